package match

import (
	"slices"
)

// MinSimilarity is the lowest score reported by Suggest.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates similar to name, best first.
// Ties keep the candidates' order.
func Suggest(name string, candidates []string, limit int) []string {
	var ranked []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
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
