// Package slug derives URL-safe company identifiers from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

	// Letters that do not decompose into base + combining mark under NFD.
	folds = strings.NewReplacer(
		"ß", "ss",
		"æ", "ae",
		"œ", "oe",
		"ø", "o",
		"đ", "d",
		"ð", "d",
		"ł", "l",
		"þ", "th",
		"ı", "i",
	)
)

// Make lowercases s, strips diacritics, collapses every run of characters
// outside [a-z0-9] into a single hyphen and trims hyphens from both ends.
// The result is empty when s has no ASCII letters or digits left.
func Make(s string) string {
	s = strings.ToLower(s)
	s = folds.Replace(s)

	// transformers carry state, build a fresh chain per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}

	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
