package ranking

// Config holds the priority-scoring thresholds. The exact weights are
// policy, not structure, so they stay tunable rather than hard-coded.
type Config struct {
	// HighUnlockThreshold is the unlock count at or above which a course
	// is rated high priority.
	HighUnlockThreshold int
	// MediumUnlockThreshold is the unlock count at or above which a
	// course is rated at least medium priority.
	MediumUnlockThreshold int
	// ElevateFoundational rates outstanding courses with no
	// prerequisites high priority regardless of unlock count.
	ElevateFoundational bool
}

// DefaultConfig returns the standard scoring thresholds.
func DefaultConfig() Config {
	return Config{
		HighUnlockThreshold:   2,
		MediumUnlockThreshold: 1,
		ElevateFoundational:   true,
	}
}
