package translate

import (
	"strings"
	"unicode"
)

// NeedsTranslation reports whether text should be sent to the translation
// provider. Empty or whitespace-only text never needs translation; otherwise
// the decision is a membership test over the Cyrillic Unicode block.
//
// This is a heuristic, not a language detector: mixed-language text with even
// one Cyrillic character is treated as translatable. It is the single shared
// classification used by both the persisting and the previewing paths, so the
// two can never diverge on what counts as translatable.
func NeedsTranslation(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return ContainsCyrillic(text)
}

// ContainsCyrillic reports whether text contains at least one character from
// the Cyrillic Unicode block.
func ContainsCyrillic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}
