package ledger

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeSearch minúsculas y sin diacríticos, para que "café" encuentre a
// "Cafe" y viceversa. Si la transformación falla se degrada a minúsculas.
func normalizeSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// matchesSearch subcadena fold-insensible sobre nombre O código.
func matchesSearch(name, code, query string) bool {
	if query == "" {
		return true
	}
	q := normalizeSearch(query)
	return strings.Contains(normalizeSearch(name), q) ||
		strings.Contains(normalizeSearch(code), q)
}
