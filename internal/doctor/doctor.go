package doctor

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelism bounds how many checks run at once.
const DefaultParallelism = 8

// Check is one diagnostic.
type Check interface {
	// Name identifies the check within its category.
	Name() string

	// Category groups related checks, e.g. "config" or "network".
	Category() string

	// Run performs the check. It must honor ctx and never return nil.
	Run(ctx context.Context) *CheckResult
}

// Runner runs registered checks concurrently and collects a Report in
// registration order.
type Runner struct {
	checks      []Check
	parallelism int
}

func NewRunner() *Runner {
	return &Runner{parallelism: DefaultParallelism}
}

// AddCheck registers c. Checks are reported in the order they are added.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check and summarizes the results.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, len(r.checks)),
	}

	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i, c := range r.checks {
		g.Go(func() error {
			report.Results[i] = runOne(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range report.Results {
		report.Summary.add(res.Status)
	}
	report.Duration = time.Since(report.Timestamp)
	return report
}

// runOne runs c, turning a panic into an error result.
func runOne(ctx context.Context, c Check) (res *CheckResult) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = &CheckResult{
				Name:     c.Name(),
				Category: c.Category(),
				Status:   SeverityError,
				Message:  fmt.Sprintf("check panicked: %v", p),
			}
		}
		res.Elapsed = time.Since(start)
	}()
	return c.Run(ctx)
}

// Report is the outcome of a doctor run.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Duration  time.Duration  `json:"duration_ns"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
