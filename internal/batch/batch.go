// Package batch runs the advisory pipeline for many students in
// parallel. It is the external orchestration layer: all task and
// concurrency concerns live here, never inside the pure pipeline.
package batch

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mfajardo/transmalla/internal/advisor"
)

// DefaultConcurrency caps how many transcripts are processed at once.
const DefaultConcurrency = 20

// Result pairs one student's recommendation with its job ID.
type Result struct {
	JobID          uuid.UUID               `json:"job_id"`
	Recommendation *advisor.Recommendation `json:"recommendation"`
}

// Runner fans requests out over a bounded worker pool.
type Runner struct {
	adv    *advisor.Advisor
	limit  int
	logger *zap.Logger
}

// NewRunner creates a Runner. A non-positive limit falls back to
// DefaultConcurrency.
func NewRunner(adv *advisor.Advisor, limit int, logger *zap.Logger) *Runner {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{adv: adv, limit: limit, logger: logger}
}

// Run processes every request and returns results in input order. Each
// request is independent: the shared catalog is read-only, so no
// locking is needed. Run stops early only on context cancellation.
func (r *Runner) Run(ctx context.Context, requests []advisor.Request) ([]Result, error) {
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for i, req := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			jobID := uuid.New()
			r.logger.Debug("processing transcript",
				zap.String("job_id", jobID.String()),
				zap.String("student_id", req.StudentID))
			results[i] = Result{
				JobID:          jobID,
				Recommendation: r.adv.Advise(req),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
