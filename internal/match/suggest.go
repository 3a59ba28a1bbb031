package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit distinct candidates resembling target, best first.
// Comparison is on folded names; ties keep candidate order.
func Suggest(target string, candidates []string, limit int) []string {
	folded := Fold(target)
	seen := map[string]struct{}{}

	var ranked []scored
	for _, c := range candidates {
		if c == target {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}

		if s := Similarity(folded, Fold(c)); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(x, y scored) int {
		return cmp.Compare(y.score, x.score)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked {
		if len(out) == limit {
			break
		}
		out = append(out, r.name)
	}

	return out
}
