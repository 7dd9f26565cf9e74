package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after all sources have been merged.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty token signing key or session cookie name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidModelConfigs indicates a missing artifact path; the server
	// cannot start without all three model artifacts.
	ErrInvalidModelConfigs = errors.New("invalid model configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
