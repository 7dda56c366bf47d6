// Package ranking assigns priority tiers and justifications to the
// eligible frontier, producing the full ordered suggestion list.
package ranking

import (
	"fmt"
	"sort"

	"github.com/mfajardo/transmalla/internal/catalog"
)

// Rank scores each eligible course from two structural signals — how
// many catalog courses it directly unlocks, and whether it is a
// foundational course still outstanding — and returns suggestions in a
// deterministic total order: priority tier, then descending unlock
// count, then ascending course code.
func Rank(eligible []catalog.Course, cat *catalog.Catalog, cfg Config) []Suggestion {
	suggestions := make([]Suggestion, 0, len(eligible))
	for _, course := range eligible {
		unlocks := cat.UnlockCount(course.Code)
		priority := tierFor(course, unlocks, cfg)
		suggestions = append(suggestions, Suggestion{
			Course:        course,
			Priority:      priority,
			Justification: justify(course, unlocks),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		ua := cat.UnlockCount(a.Course.Code)
		ub := cat.UnlockCount(b.Course.Code)
		if ua != ub {
			return ua > ub
		}
		return a.Course.Code < b.Course.Code
	})

	return suggestions
}

// tierFor applies the threshold rules for a single course.
func tierFor(course catalog.Course, unlocks int, cfg Config) Priority {
	switch {
	case unlocks >= cfg.HighUnlockThreshold:
		return PriorityHigh
	case cfg.ElevateFoundational && course.Foundational():
		return PriorityHigh
	case unlocks >= cfg.MediumUnlockThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// justify builds the human-readable reason from the same signals the
// tier came from.
func justify(course catalog.Course, unlocks int) string {
	switch {
	case unlocks == 1:
		return "Prerrequisito directo de 1 curso del nuevo plan"
	case unlocks > 1:
		return fmt.Sprintf("Prerrequisito directo de %d cursos del nuevo plan", unlocks)
	case course.Foundational():
		return "Curso fundamental sin prerrequisitos pendientes"
	default:
		return "No desbloquea otros cursos de forma inmediata"
	}
}
