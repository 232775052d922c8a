// Package title normalizes and compares release titles.
package title

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAccents strips combining diacritical marks so that accented and
// unaccented spellings compare equal.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// Normalize lowercases a title, folds accents, and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	return strings.Join(strings.Fields(s), " ")
}

// Similarity returns the Jaro-Winkler similarity of two normalized titles
// in [0, 1]. Jaro-Winkler favors shared prefixes, which suits release
// names that lead with the show title.
func Similarity(a, b string) float64 {
	return float64(edlib.JaroWinklerSimilarity(Normalize(a), Normalize(b)))
}
