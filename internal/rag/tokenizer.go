package rag

import (
	"strings"
	"unicode"
)

// minTokenLength drops short noise words ("a", "of", "is").
const minTokenLength = 3

// Tokenize lowercases text, splits on non-alphanumeric runes, and drops
// tokens shorter than minTokenLength. Indexing and querying must both go
// through this function so vocabularies line up.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTokenLength {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
