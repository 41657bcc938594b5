package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AllMarker selects every index.
const AllMarker = "all"

// ParseIndexes reads a space separated list of 1-based indices for a
// collection of n entries named noun. "all" expands to 1..n. Every bad
// token yields one message and is skipped; parsing carries on.
func ParseIndexes(input string, n int, noun string) ([]int, []string) {
	input = strings.TrimSpace(input)
	if input == AllMarker {
		indexes := make([]int, 0, n)
		for i := 1; i <= n; i++ {
			indexes = append(indexes, i)
		}
		return indexes, nil
	}

	var (
		indexes  []int
		messages []string
	)
	for _, tok := range strings.Fields(input) {
		i, err := strconv.Atoi(tok)
		if err != nil {
			messages = append(messages, fmt.Sprintf("Could not recognise %s %s, please ensure it is an integer.", noun, tok))
			continue
		}
		if i < 1 || i > n {
			messages = append(messages, fmt.Sprintf("%s with index %s does not exist.", capitalize(noun), tok))
			continue
		}
		indexes = append(indexes, i)
	}
	return indexes, messages
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
