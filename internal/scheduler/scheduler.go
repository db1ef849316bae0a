// Package scheduler fans out availability probes for every
// (platform, username) pair and collects one outcome per pair.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/status"
)

// BatchName labels outcomes produced by the custom probes.
const BatchName = "custom"

// Prober checks a single (platform, username) pair.
type Prober interface {
	Probe(ctx context.Context, id platform.ID, username string) status.Status
}

// Scheduler runs probes concurrently over one shared Prober.
type Scheduler struct {
	prober Prober
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Scheduler. A nil logger discards output.
func New(p Prober, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Scheduler{prober: p, logger: logger, now: time.Now}
}

// Run probes every pair and waits for all of them. Outcomes are ordered
// platform-major in the order given. A probe that panics yields a
// task-fail status for its own pair and leaves its siblings untouched.
func (s *Scheduler) Run(ctx context.Context, platforms []platform.ID, usernames []string) status.Batch {
	start := s.now()
	outcomes := make([]status.Outcome, len(platforms)*len(usernames))

	// Plain group: a failing probe must never cancel its siblings.
	var g errgroup.Group
	for i, id := range platforms {
		for j, u := range usernames {
			slot := i*len(usernames) + j
			outcomes[slot] = status.Outcome{Platform: id, Username: u}
			g.Go(func() error {
				outcomes[slot].Status = s.probe(ctx, id, u)
				return nil
			})
		}
	}
	_ = g.Wait()

	elapsed := s.now().Sub(start)
	s.logger.Info("custom checks done",
		"tasks", len(outcomes),
		"elapsed", elapsed.Round(time.Millisecond))

	return status.Batch{Name: BatchName, Outcomes: outcomes, Duration: elapsed}
}

func (s *Scheduler) probe(ctx context.Context, id platform.ID, username string) (st status.Status) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("probe task failed",
				"platform", id, "username", username, "panic", fmt.Sprint(r))
			st = status.TaskFail("panic")
		}
	}()
	return s.prober.Probe(ctx, id, username)
}
