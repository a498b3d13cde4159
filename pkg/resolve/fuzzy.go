package resolve

import "strings"

const (
	// AcceptScore is the floor below which a candidate is excluded from
	// ranked search results.
	AcceptScore = 40
	// SuggestScore is the floor for near-miss "did you mean" suggestions.
	SuggestScore = 30
	// wordScoreCap bounds the summed word-level partial score.
	wordScoreCap = 65
)

// Score rates how well candidate matches query on a 0-100 scale.
//
// The scale is fixed: 100 for a case-insensitive exact match, 90 for a
// prefix match, 80 for a substring match, 70-10*d for an edit distance d
// of at most 2 on strings longer than 3 characters, and a capped sum of
// word-level partial matches otherwise. Score is not symmetric.
func Score(query, candidate string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))

	if q == c {
		return 100
	}
	if strings.HasPrefix(c, q) {
		return 90
	}
	if strings.Contains(c, q) {
		return 80
	}

	if d := Levenshtein(q, c); d <= 2 && max(len(q), len(c)) > 3 {
		return 70 - 10*d
	}

	score := 0
	for _, qw := range strings.Fields(q) {
		for _, cw := range strings.Fields(c) {
			if qw == cw {
				score += 20
				continue
			}
			longer := max(len(qw), len(cw))
			switch Levenshtein(qw, cw) {
			case 1:
				if longer > 3 {
					score += 15
				}
			case 2:
				if longer > 5 {
					score += 10
				}
			}
		}
	}
	return min(score, wordScoreCap)
}

// Levenshtein returns the edit distance between a and b with unit costs
// for insertion, deletion and substitution, computed over a full
// dynamic-programming table. The distance is symmetric.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	table := make([][]int, len(ra)+1)
	for i := range table {
		table[i] = make([]int, len(rb)+1)
		table[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		table[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			table[i][j] = min(
				table[i-1][j]+1,
				table[i][j-1]+1,
				table[i-1][j-1]+cost,
			)
		}
	}

	return table[len(ra)][len(rb)]
}
