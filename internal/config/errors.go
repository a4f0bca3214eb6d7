package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token signing key or unknown environment).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidTranslationConfigs indicates inconsistent translation
	// provider settings (for example, an API key without an endpoint URL).
	ErrInvalidTranslationConfigs = errors.New("invalid translation configuration")
)

// ErrWeakProductionKey is returned by [ProvisionCookieKey] when a production
// deployment has no usable cookie signing key and key generation is not
// allowed. Fatal at startup only; never recoverable at request time.
var ErrWeakProductionKey = errors.New("no secure cookie signing key provided in production")
