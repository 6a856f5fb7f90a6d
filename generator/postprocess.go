package generator

import (
	"strings"
)

// ParseSuggestions splits raw suggest output into blocks. A line whose trimmed
// text starts with a digit 1-9 opens a new block; later non-blank lines join
// the current block. Blank lines are dropped and every kept line is trimmed.
func ParseSuggestions(raw string) []Suggestion {
	var blocks []string
	var current []string

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if startsWithDigit(trimmed) && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, trimmed)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	out := make([]Suggestion, 0, len(blocks))
	for i, b := range blocks {
		out = append(out, Suggestion{Index: i + 1, Text: b})
	}
	return out
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '1' && s[0] <= '9'
}
