package parser

import (
	"regexp"
	"strings"
)

var spokenDigits = map[string]string{
	"one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8",
}

var spokenDigitPattern = regexp.MustCompile(`\b(one|two|three|four|five|six|seven|eight)\b`)

// fileRankPattern matches a file (or two-letter file run, for "ad5"-style
// merges) followed by whitespace and a lone rank digit: "f 3", "ad 5".
var fileRankPattern = regexp.MustCompile(`\b([a-h]?[a-h])\s+([1-8])\b`)

// preprocess lowercases and trims the input, rewrites spoken digit words
// to digits, then merges separated file+rank runs into single square
// tokens, so "f 3" and "knight f three" both reach tokenization already
// looking like "f3" and "knight f3".
func preprocess(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	s = spokenDigitPattern.ReplaceAllStringFunc(s, func(word string) string {
		return spokenDigits[word]
	})

	for {
		next := fileRankPattern.ReplaceAllString(s, "$1$2")
		if next == s {
			break
		}
		s = next
	}

	return s
}
