package execution

import (
	"time"

	"ctest/internal/assert"
	"ctest/internal/domain"
	"ctest/internal/registry"
)

// Runner executes a single test case
type Runner struct {
	reporter assert.Reporter
	now      func() time.Time
}

// NewRunner creates a new Runner. A nil now uses time.Now.
func NewRunner(r assert.Reporter, now func() time.Time) *Runner {
	if now == nil {
		now = time.Now
	}
	return &Runner{reporter: r, now: now}
}

// Run invokes the case once and returns its result
func (r *Runner) Run(tc registry.Case) domain.Result {
	start := r.now()
	failures := tc.Run(r.reporter)
	return domain.Result{
		Name:     tc.Name,
		Failures: failures,
		Duration: r.now().Sub(start),
	}
}
