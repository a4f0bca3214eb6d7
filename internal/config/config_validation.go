package config

import "time"

// Fallback values applied to fields left empty by every configuration source.
const (
	defaultTokenIssuer        = "notes-keeper"
	defaultTokenTTLMinutes    = 60
	defaultCookieTTLDays      = 30
	defaultTranslationTimeout = 10 * time.Second
	defaultRequestTimeout     = 30 * time.Second
	defaultHTTPAddress        = "0.0.0.0:8080"
)

// setDefaults fills the fields no configuration source provided. Defaults are
// applied after merging so that any source can still override them.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenAlgorithm == "" {
		cfg.App.TokenAlgorithm = "HS256"
	}
	if cfg.App.AccessTokenTTLMinutes == 0 {
		cfg.App.AccessTokenTTLMinutes = defaultTokenTTLMinutes
	}
	if cfg.App.CookieTTLDays == 0 {
		cfg.App.CookieTTLDays = defaultCookieTTLDays
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvDevelopment
	}
	if cfg.Translation.Timeout == 0 {
		cfg.Translation.Timeout = defaultTranslationTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The cookie signing key is deliberately not checked here: its rules depend
// on the deployment environment and are enforced by [ProvisionCookieKey].
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.Environment != EnvDevelopment && cfg.App.Environment != EnvProduction {
		return ErrInvalidAppConfigs
	}
	if cfg.App.AccessTokenTTLMinutes < 0 || cfg.App.CookieTTLDays < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !cfg.Translation.UseOffline && cfg.Translation.APIKey != "" && cfg.Translation.APIURL == "" {
		return ErrInvalidTranslationConfigs
	}

	return nil
}
