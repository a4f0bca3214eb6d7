package translate

import (
	"context"
	"fmt"
)

// offlineProvider is the deterministic stand-in used when the external
// provider is disabled (USE_OFFLINE_TRANSLATION) or no API key is configured.
// The output is a pure function of the input, which makes translation flows
// reproducible in development and tests.
type offlineProvider struct{}

// NewOfflineProvider constructs the offline [Provider].
func NewOfflineProvider() Provider {
	return offlineProvider{}
}

// Translate implements [Provider] without any I/O.
func (offlineProvider) Translate(_ context.Context, text string) (string, error) {
	return fmt.Sprintf("[Translated from %s to %s]: %s", SourceLanguage, TargetLanguage, text), nil
}
