package question

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	blank      = "_____"
	markPrefix = "**"
	markSuffix = "**"
)

// findTerm returns the byte ranges of whole-word, case-insensitive occurrences of term in sentence
func findTerm(sentence, term string) [][2]int {
	term = strings.TrimSpace(term)
	if term == "" || sentence == "" {
		return nil
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	var ranges [][2]int
	for _, loc := range pattern.FindAllStringIndex(sentence, -1) {
		start, end := loc[0], loc[1]
		before, _ := utf8.DecodeLastRuneInString(sentence[:start])
		after, _ := utf8.DecodeRuneInString(sentence[end:])
		if start > 0 && isWordRune(before) {
			continue
		}
		if end < len(sentence) && isWordRune(after) {
			continue
		}
		ranges = append(ranges, [2]int{start, end})
	}
	return ranges
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

// containsTerm reports whether term occurs as a whole word in sentence
func containsTerm(sentence, term string) bool {
	return len(findTerm(sentence, term)) > 0
}

// replaceTerm rewrites every occurrence of term using replace
func replaceTerm(sentence, term string, replace func(match string) string) string {
	ranges := findTerm(sentence, term)
	if len(ranges) == 0 {
		return sentence
	}

	var b strings.Builder
	last := 0
	for _, r := range ranges {
		b.WriteString(sentence[last:r[0]])
		b.WriteString(replace(sentence[r[0]:r[1]]))
		last = r[1]
	}
	b.WriteString(sentence[last:])
	return b.String()
}

func maskTerm(sentence, term string) string {
	return replaceTerm(sentence, term, func(string) string {
		return blank
	})
}

func markTerm(sentence, term string) string {
	return replaceTerm(sentence, term, func(match string) string {
		return markPrefix + match + markSuffix
	})
}
