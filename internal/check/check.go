package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/thoreinstein/namecheck/internal/aggregate"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/lookup"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/scheduler"
	"github.com/thoreinstein/namecheck/internal/status"
)

var (
	// ErrNoUsernames is returned when the input holds no usable handle.
	ErrNoUsernames = errors.New("no valid usernames provided")

	// ErrCancelled is returned when the run is interrupted.
	ErrCancelled = errors.New("cancelled by user")
)

// Phase summarizes one phase of a run.
type Phase struct {
	Name     string        `json:"name" yaml:"name"`
	Tasks    int           `json:"tasks" yaml:"tasks"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result is the outcome of a completed run.
type Result struct {
	// Usernames and Platforms are sorted.
	Usernames []string
	Platforms []platform.ID
	Table     aggregate.Table
	Phases    []Phase
	StartedAt time.Time
}

// Runner composes the delegated lookup and the custom probes.
type Runner struct {
	scheduler *scheduler.Scheduler
	probed    []platform.ID
	adapter   *lookup.Adapter
	logger    *slog.Logger
	progress  io.Writer
}

// NewRunner creates a Runner probing the given platforms. A nil adapter
// skips the delegated phase.
func NewRunner(s *scheduler.Scheduler, probed []platform.ID, adapter *lookup.Adapter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Runner{scheduler: s, probed: probed, adapter: adapter, logger: logger}
}

// SetProgress makes Run announce each phase and its duration on w.
func (r *Runner) SetProgress(w io.Writer) { r.progress = w }

// announce prints the start line of a phase and returns a func printing
// its end line.
func (r *Runner) announce(name string, ids []platform.ID, usernames int) func(time.Duration) {
	if r.progress == nil {
		return func(time.Duration) {}
	}
	sorted := slices.Clone(ids)
	platform.Sort(sorted)
	names := make([]string, len(sorted))
	for i, id := range sorted {
		names[i] = id.String()
	}
	fmt.Fprintf(r.progress, "running %d %s checks (%s)...\n", len(ids)*usernames, name, strings.Join(names, ", "))
	return func(d time.Duration) {
		fmt.Fprintf(r.progress, "%s checks done in %.2f sec\n", name, d.Seconds())
	}
}

// Platforms returns every platform a run covers, sorted.
func (r *Runner) Platforms() []platform.ID {
	ids := slices.Clone(r.probed)
	if r.adapter != nil {
		ids = append(ids, r.adapter.Platforms()...)
	}
	platform.Sort(ids)
	return ids
}

// Run checks every username on every platform. Usernames must be
// distinct, as returned by ParseHandles.
func (r *Runner) Run(ctx context.Context, usernames []string) (*Result, error) {
	if len(usernames) == 0 {
		return nil, ErrNoUsernames
	}
	started := time.Now()
	platforms := r.Platforms()
	agg := aggregate.New(usernames, platforms)

	var phases []Phase
	merge := func(b status.Batch) error {
		if ctx.Err() != nil {
			r.logger.Debug("discarding partial results", "phase", b.Name)
			return ErrCancelled
		}
		if err := agg.Merge(b.Outcomes); err != nil {
			return errors.Wrapf(err, "merging %s outcomes", b.Name)
		}
		phases = append(phases, Phase{Name: b.Name, Tasks: len(b.Outcomes), Duration: b.Duration})
		return nil
	}

	if r.adapter != nil && len(r.adapter.Platforms()) > 0 {
		done := r.announce(lookup.BatchName, r.adapter.Platforms(), len(usernames))
		b := r.adapter.Run(ctx, usernames)
		if err := merge(b); err != nil {
			return nil, err
		}
		done(b.Duration)
	}
	if len(r.probed) > 0 {
		done := r.announce(scheduler.BatchName, r.probed, len(usernames))
		b := r.scheduler.Run(ctx, r.probed, usernames)
		if err := merge(b); err != nil {
			return nil, err
		}
		done(b.Duration)
	}

	table, err := agg.Table()
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(usernames)
	slices.Sort(sorted)
	return &Result{
		Usernames: sorted,
		Platforms: platforms,
		Table:     table,
		Phases:    phases,
		StartedAt: started,
	}, nil
}
