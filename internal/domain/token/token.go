// Package token normalizes raw text into terms for TF-IDF matching.
package token

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into terms on any rune that is
// not a letter or a digit. Empty tokens are dropped. Order is preserved
// so callers can count term frequencies.
//
// Intentionally simple: no stemming, no stopword removal. Numerals are
// kept as terms ("24" matches "24").
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
