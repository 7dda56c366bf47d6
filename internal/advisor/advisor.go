// Package advisor runs the full recommendation pipeline for one student:
// reconcile transcript records, resolve the eligible frontier, rank it,
// and select the subsidy bundle.
package advisor

import (
	"go.uber.org/zap"

	"github.com/mfajardo/transmalla/internal/bundle"
	"github.com/mfajardo/transmalla/internal/catalog"
	"github.com/mfajardo/transmalla/internal/eligibility"
	"github.com/mfajardo/transmalla/internal/ranking"
	"github.com/mfajardo/transmalla/internal/reconcile"
)

// Options configures an Advisor. Zero values fall back to defaults.
type Options struct {
	RankingConfig ranking.Config
	CreditCeiling int
	Logger        *zap.Logger
}

// Advisor wires the catalog and policy knobs into a reusable pipeline.
// It holds no per-student state; one Advisor serves concurrent
// invocations over the shared read-only catalog.
type Advisor struct {
	cat     *catalog.Catalog
	cfg     ranking.Config
	ceiling int
	logger  *zap.Logger
}

// New creates an Advisor over the given catalog.
func New(cat *catalog.Catalog, opts Options) *Advisor {
	cfg := opts.RankingConfig
	if cfg == (ranking.Config{}) {
		cfg = ranking.DefaultConfig()
	}
	ceiling := opts.CreditCeiling
	if ceiling == 0 {
		ceiling = bundle.DefaultCreditCeiling
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{cat: cat, cfg: cfg, ceiling: ceiling, logger: logger}
}

// Request is one student's input to the pipeline.
type Request struct {
	StudentName string                      `json:"student_name"`
	StudentID   string                      `json:"student_id"`
	Records     []reconcile.CompletedRecord `json:"records"`
	// CreditCeiling overrides the advisor's ceiling for this invocation
	// when positive.
	CreditCeiling int `json:"credit_ceiling,omitempty"`
}

// Recommendation is the pipeline output handed to the renderer: the full
// ranked suggestion list, the credit-capped bundle, and diagnostics.
type Recommendation struct {
	StudentName    string                      `json:"student_name"`
	StudentID      string                      `json:"student_id"`
	SatisfiedCodes []string                    `json:"satisfied_courses"`
	Suggestions    []ranking.Suggestion        `json:"suggestions"`
	Bundle         []ranking.Suggestion        `json:"bundle"`
	BundleCredits  int                         `json:"bundle_credits"`
	CreditCeiling  int                         `json:"credit_ceiling"`
	Unmatched      []reconcile.CompletedRecord `json:"unmatched,omitempty"`
}

// Advise runs the pure pipeline chain for one student. Unmatched
// records, an empty frontier, and an empty bundle are all valid
// outcomes, never errors.
func (a *Advisor) Advise(req Request) *Recommendation {
	ceiling := a.ceiling
	if req.CreditCeiling > 0 {
		ceiling = req.CreditCeiling
	}

	progress := reconcile.Reconcile(req.StudentName, req.StudentID, req.Records, a.cat)
	eligible := eligibility.Resolve(progress, a.cat)
	ranked := ranking.Rank(eligible, a.cat, a.cfg)
	selected := bundle.Select(ranked, ceiling)

	a.logger.Debug("recommendation built",
		zap.String("student_id", req.StudentID),
		zap.Int("records", len(req.Records)),
		zap.Int("satisfied", len(progress.Satisfied)),
		zap.Int("unmatched", progress.UnmatchedCount()),
		zap.Int("eligible", len(eligible)),
		zap.Int("bundle", len(selected)),
		zap.Int("ceiling", ceiling))

	return &Recommendation{
		StudentName:    req.StudentName,
		StudentID:      req.StudentID,
		SatisfiedCodes: progress.SatisfiedCodes(),
		Suggestions:    ranked,
		Bundle:         selected,
		BundleCredits:  bundle.TotalCredits(selected),
		CreditCeiling:  ceiling,
		Unmatched:      progress.Unmatched,
	}
}

// Catalog returns the advisor's catalog.
func (a *Advisor) Catalog() *catalog.Catalog {
	return a.cat
}
