package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the application relies on at startup. It runs after defaults
// are merged, so a failure means a source explicitly blanked a value.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.SessionCookie == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Model.FeatureNamesPath == "" || cfg.Model.ScalerPath == "" || cfg.Model.ModelPath == "" {
		return ErrInvalidModelConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
