// Package text splits pasted passages into sentences and compares typed input.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sentencePattern matches a run of non-terminators followed by its terminators.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Split breaks raw text into trimmed sentences. Trailing text without a
// terminator is dropped.
func Split(raw string) []string {
	matches := sentencePattern.FindAllString(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		sentences = append(sentences, strings.TrimSpace(m))
	}
	return sentences
}

// WordCount returns the number of whitespace-delimited words in s.
func WordCount(s string) int {
	return len(strings.Fields(strings.TrimSpace(s)))
}

// Join concatenates sentences with single spaces.
func Join(sentences []string) string {
	return strings.Join(sentences, " ")
}

// CharCount returns the rune length of the space-joined sentences.
func CharCount(sentences []string) int {
	return utf8.RuneCountInString(Join(sentences))
}
