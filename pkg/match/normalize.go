package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips combining diacritical marks, so that
// "Jürgen" and "jurgen" index identically. Transform errors fall back to
// plain lowercasing.
func Normalize(s string) string {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normal, _, err := transform.String(transformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(normal)
}
