// Package bundle selects the credit-capped subset of suggestions meant
// for subsidized enrollment.
package bundle

import "github.com/mfajardo/transmalla/internal/ranking"

// DefaultCreditCeiling is the subsidy cap in credits. Callers may
// override it per selection; policy changes should not require code
// changes elsewhere.
const DefaultCreditCeiling = 14

// Select returns a prefix-preserving subset of ranked whose credits sum
// to at most ceiling. The pass is greedy in the given priority order: a
// course too large for the remaining budget is skipped, and later
// smaller courses may still fill the remainder. This trades exact
// knapsack optimality for deterministic, explainable output. An empty
// result is valid when nothing fits.
func Select(ranked []ranking.Suggestion, ceiling int) []ranking.Suggestion {
	remaining := ceiling
	var selected []ranking.Suggestion
	for _, s := range ranked {
		if s.Course.Credits > remaining {
			continue
		}
		selected = append(selected, s)
		remaining -= s.Course.Credits
	}
	return selected
}

// TotalCredits sums the credits of a suggestion sequence.
func TotalCredits(suggestions []ranking.Suggestion) int {
	total := 0
	for _, s := range suggestions {
		total += s.Course.Credits
	}
	return total
}
