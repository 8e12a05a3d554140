package quality

import (
	"sort"

	"github.com/katalvlaran/artfield/pattern"
)

// Ranked pairs one candidate field with its score and its position in
// the original input slice.
type Ranked struct {
	Index int
	Field pattern.Field
	Score Score
}

// Filter keeps the fields whose Total is at least threshold, preserving
// input order. The returned Ranked entries carry the original indices.
func Filter(fields []pattern.Field, threshold float64) []Ranked {
	kept := make([]Ranked, 0, len(fields))
	for i, f := range fields {
		s := Evaluate(f)
		if s.Total >= threshold {
			kept = append(kept, Ranked{Index: i, Field: f, Score: s})
		}
	}

	return kept
}

// Rank scores all fields and returns the top n by Total, descending.
// The sort is stable: candidates with tied totals keep their original
// relative order, so ranking is reproducible. n larger than the input
// returns everything; n ≤ 0 returns an empty slice.
func Rank(fields []pattern.Field, n int) []Ranked {
	if n <= 0 {
		return []Ranked{}
	}
	all := make([]Ranked, len(fields))
	for i, f := range fields {
		all[i] = Ranked{Index: i, Field: f, Score: Evaluate(f)}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score.Total > all[j].Score.Total
	})
	if n > len(all) {
		n = len(all)
	}

	return all[:n]
}

// IsReal reports whether field passes the quality threshold — the
// discriminator's accept/reject verdict.
func IsReal(field pattern.Field, threshold float64) bool {
	return Evaluate(field).Total >= threshold
}
