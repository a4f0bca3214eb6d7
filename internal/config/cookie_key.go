package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/ivmikh/notes-keeper/internal/logger"
)

// DefaultCookieKey is the well-known development fallback for the
// reauthentication cookie signing key. Anyone holding this value can forge
// cookies, so a production deployment must never run with it.
const DefaultCookieKey = "notes_app_cookie_key"

// generatedKeyBytes is the entropy of an auto-generated cookie key.
const generatedKeyBytes = 32

// ProvisionCookieKey resolves the reauthentication cookie signing key for
// this process. It runs exactly once at startup, before any request is
// served; the result is stored in the immutable configuration and injected
// into the session layer.
//
// Development: the configured key if present, otherwise [DefaultCookieKey]
// with a warning. Never fatal.
//
// Production:
//   - a configured key that is not the well-known default is used as-is;
//   - otherwise, if app.AllowGeneratedCookieKey is set, a cryptographically
//     random key is generated for this process lifetime only — every restart
//     invalidates all outstanding reauthentication cookies, which the log
//     warns about loudly;
//   - otherwise the process must not start: the returned error wraps
//     [ErrWeakProductionKey] and lists the remediation options.
func ProvisionCookieKey(app App, log *logger.Logger) (string, error) {
	if !app.IsProduction() {
		if app.CookieSignKey != "" {
			return app.CookieSignKey, nil
		}
		log.Warn().Msg("using default cookie signing key in development; this is not secure for production")
		return DefaultCookieKey, nil
	}

	if app.CookieSignKey != "" && app.CookieSignKey != DefaultCookieKey {
		return app.CookieSignKey, nil
	}

	if app.AllowGeneratedCookieKey {
		key, err := generateSecureKey(generatedKeyBytes)
		if err != nil {
			return "", fmt.Errorf("generating cookie signing key: %w", err)
		}
		log.Warn().Msg("SECURITY WARNING: generated a random cookie signing key for this process; " +
			"all existing reauthentication cookies become invalid on every restart — " +
			"set a permanent COOKIE_SIGNING_KEY to avoid this")
		return key, nil
	}

	return "", fmt.Errorf("%w: set a strong unique key via (1) the COOKIE_SIGNING_KEY "+
		"environment variable, (2) the -cookie-signing-key flag or the JSON config file, or "+
		"(3) set ALLOW_GENERATED_COOKIE_KEY=true to auto-generate a per-process key (not recommended)",
		ErrWeakProductionKey)
}

// generateSecureKey returns length cryptographically random bytes hex-encoded.
func generateSecureKey(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
