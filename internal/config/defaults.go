package config

import "time"

// Built-in defaults. The signing key default mirrors the long-lived demo
// secret of the original deployment; any real installation overrides it via
// APP_TOKEN_SIGN_KEY.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "phishguard_secret",
			TokenIssuer:   "phishguard",
			TokenDuration: 24 * time.Hour,
			SessionCookie: "phishguard_session",
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
			StaticDir:      "static",
		},
		Model: Model{
			FeatureNamesPath: "artifacts/feature_names.json",
			ScalerPath:       "artifacts/scaler.json",
			ModelPath:        "artifacts/model.json",
		},
	}
}
