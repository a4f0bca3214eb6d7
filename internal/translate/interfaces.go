// Package translate implements the translation provider used by the notes
// service: an HTTP client for the external translation API and a
// deterministic offline stand-in, plus the shared source-script heuristic
// that decides whether a text is worth sending to the provider at all.
package translate

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/translate_provider_mock.go -package=mock

// Language codes fixed by the product: notes are translated from Russian to
// English.
const (
	SourceLanguage = "ru"
	TargetLanguage = "en"
)

// Provider translates a text from the source language to the target language.
//
// Implementations must be safe for concurrent use and must honour ctx
// cancellation; a failed or cancelled call never has side effects.
type Provider interface {
	Translate(ctx context.Context, text string) (string, error)
}
