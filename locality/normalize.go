package locality

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims s, lowercases it and strips combining marks, so that
// "Móstoles", "MOSTOLES" and " mostoles" compare equal.
//
// The result is NFC; letters without a decomposition (e.g. "ß") are kept.
func Normalize(s string) string {
	lower := cases.Lower(language.Und).String(strings.TrimSpace(s))

	// NFD splits "ó" into "o" + U+0301, which runes.Remove then drops.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}

	return out
}
