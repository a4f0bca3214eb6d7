package translate

import (
	"github.com/ivmikh/notes-keeper/internal/config"
	"github.com/ivmikh/notes-keeper/internal/logger"
)

// NewProviderFromConfig picks the [Provider] implementation for cfg: the
// offline stand-in when offline mode is forced or no API key is configured,
// the external HTTP provider otherwise.
func NewProviderFromConfig(cfg config.Translation, logger *logger.Logger) (Provider, error) {
	if cfg.UseOffline || cfg.APIKey == "" {
		return NewOfflineProvider(), nil
	}
	return NewHTTPProvider(cfg, logger)
}
