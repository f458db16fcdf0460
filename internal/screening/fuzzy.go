package screening

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Ratio returns a 0-100 similarity between two strings over the
// case-folded inputs, normalized as (total - distance) / total where
// the distance charges 2 per substitution and 1 per insert or delete.
// That makes the score equal 2*matches/total for the longest common
// subsequence, so a pure insertion of k characters costs k, not 2k.
// 100 means identical, 0 means nothing in common. Both inputs empty
// counts as 100.
func Ratio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 100
	}

	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 100
	}

	dist := indelDistance([]rune(a), []rune(b))
	return int(math.Round(float64(total-dist) / float64(total) * 100))
}

// TokenSortRatio compares two strings after lowercasing, stripping
// punctuation and sorting their tokens, making the comparison
// insensitive to word order ("Smith John" vs "John Smith").
func TokenSortRatio(a, b string) int {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

func sortedTokens(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// indelDistance computes the edit distance between two rune slices
// with substitutions costing 2 and insertions and deletions costing 1,
// using a single-row dynamic programming table. Under this weighting
// the distance equals len(a)+len(b) minus twice the longest common
// subsequence.
func indelDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 2
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur := row[j]
			row[j] = minInt(row[j]+1, minInt(row[j-1]+1, prev+cost))
			prev = cur
		}
	}

	return row[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
