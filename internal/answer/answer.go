// Package answer compares free-text answers with canonical answers.
package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, removes punctuation and symbols, and collapses whitespace.
// Letters in any script keep their diacritics; combining marks survive so that
// scripts like Devanagari are not broken apart.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = cases.Lower(language.Und).String(s)
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Check reports whether the user's answer matches the correct one after normalization
func Check(userAnswer, correctAnswer string) bool {
	return Normalize(userAnswer) == Normalize(correctAnswer)
}
