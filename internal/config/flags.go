package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-signing-key access token signing key
//	-cookie-signing-key reauthentication cookie signing key
//	-token-algorithm HMAC algorithm name (HS256, HS384, HS512)
//	-token-issuer token issuer name
//	-token-ttl access token lifetime in minutes
//	-cookie-ttl reauthentication cookie lifetime in days
//	-environment deployment environment (development|production)
//	-allow-generated-cookie-key allow a per-process random cookie key in production
//	-offline-translation use the deterministic offline translation stand-in
//	-translation-timeout translation provider call timeout (e.g., "10s")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var cookieSignKey string
	var tokenAlgorithm string
	var tokenIssuer string
	var tokenTTLMinutes int
	var cookieTTLDays int
	var environment string
	var allowGeneratedCookieKey bool
	var offlineTranslation bool
	var translationTimeout time.Duration
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "signing-key", "", "Access token signing key")
	flag.StringVar(&cookieSignKey, "cookie-signing-key", "", "Reauthentication cookie signing key")
	flag.StringVar(&tokenAlgorithm, "token-algorithm", "", "HMAC algorithm (HS256, HS384, HS512)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.IntVar(&tokenTTLMinutes, "token-ttl", 0, "Access token lifetime in minutes")
	flag.IntVar(&cookieTTLDays, "cookie-ttl", 0, "Reauthentication cookie lifetime in days")
	flag.StringVar(&environment, "environment", "", "Deployment environment (development|production)")
	flag.BoolVar(&allowGeneratedCookieKey, "allow-generated-cookie-key", false, "Allow a per-process random cookie key in production")
	flag.BoolVar(&offlineTranslation, "offline-translation", false, "Use the offline translation stand-in")
	flag.DurationVar(&translationTimeout, "translation-timeout", 0, "Translation provider timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:            tokenSignKey,
			CookieSignKey:           cookieSignKey,
			TokenAlgorithm:          tokenAlgorithm,
			TokenIssuer:             tokenIssuer,
			AccessTokenTTLMinutes:   tokenTTLMinutes,
			CookieTTLDays:           cookieTTLDays,
			Environment:             environment,
			AllowGeneratedCookieKey: allowGeneratedCookieKey,
		},
		Translation: Translation{
			UseOffline: offlineTranslation,
			Timeout:    translationTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
