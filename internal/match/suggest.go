package match

import (
	"sort"
	"strconv"
	"strings"
)

// MinScore is the similarity below which a candidate is never suggested.
const MinScore = 0.5

// Suggest returns up to limit candidates most similar to name, best first.
// Ties keep the candidates' original order.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Score(name, c); s >= MinScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for i := 0; i < len(ranked) && i < limit; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}

// Score is a similarity in [0, 1] between normalized identifiers.
// 1 means the identifiers normalize to the same string.
func Score(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" && nb == "" {
		return 1
	}

	longest := max(len([]rune(na)), len([]rune(nb)))

	return 1 - float64(Levenshtein(na, nb))/float64(longest)
}

// Normalize lowercases s and drops '_', '-' and ' '.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// single row over the shorter string
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag = row[i]
			row[i] = next
		}
	}

	return row[len(ra)]
}

// DidYouMean formats the best suggestion for name as an error suffix,
// or returns "" when nothing is close enough.
func DidYouMean(name string, candidates []string) string {
	best := Suggest(name, candidates, 1)
	if len(best) == 0 {
		return ""
	}

	return " (did you mean " + strconv.Quote(best[0]) + "?)"
}
