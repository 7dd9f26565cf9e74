package config

import "time"

// ClientConfig is the configuration container for the terminal client.
type ClientConfig struct {
	// Adapter holds settings for talking to the phishguard server.
	Adapter Adapter `envPrefix:"ADAPTER_"`
}

// Adapter holds configuration for the HTTP API client used by the
// terminal client.
type Adapter struct {
	// HTTPAddress is the base URL of the phishguard server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every API call made by the client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the terminal client configuration from environment
// variables, fills gaps with defaults, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return cfg, cfg.validate()
}
