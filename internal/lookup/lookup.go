// Package lookup adapts a delegated batch-lookup subsystem to the status
// vocabulary used by the rest of namecheck.
//
// The subsystem is reached through one synchronous Batcher call covering
// every requested username for the platforms it owns. The Adapter maps
// each returned record to a status, fills pairs the subsystem omitted with
// a no-result status, and degrades the whole batch to sfailed:<cause> when
// the call itself fails.
package lookup

import (
	"context"
	"log/slog"
	"time"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/status"
)

// BatchName labels outcomes produced by the delegated lookup.
const BatchName = "delegated"

// Record is one result returned by the delegated subsystem.
type Record struct {
	// Query is the username that was looked up.
	Query string
	// Platform identifies where it was looked up.
	Platform platform.ID
	// Available is true when free, false when taken and nil when unknown.
	Available *bool
	// Message explains an unknown result.
	Message string
}

// Batcher is the delegated lookup subsystem.
type Batcher interface {
	Query(ctx context.Context, usernames []string, platforms []platform.ID) ([]Record, error)
}

// Adapter converts one Batcher call into a status batch.
type Adapter struct {
	batcher   Batcher
	platforms []platform.ID
	logger    *slog.Logger
}

// NewAdapter creates an Adapter covering platforms.
func NewAdapter(b Batcher, platforms []platform.ID, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Adapter{batcher: b, platforms: platforms, logger: logger}
}

// Platforms returns the platforms covered by the adapter.
func (a *Adapter) Platforms() []platform.ID { return a.platforms }

type pair struct {
	platform platform.ID
	username string
}

// Run performs the batch call and returns exactly one outcome per
// (platform, username) pair, ordered platform-major.
func (a *Adapter) Run(ctx context.Context, usernames []string) status.Batch {
	start := time.Now()
	records, err := a.query(ctx, usernames)
	elapsed := time.Since(start)

	outcomes := make([]status.Outcome, 0, len(a.platforms)*len(usernames))
	if err != nil {
		a.logger.Warn("delegated lookup failed", "error", err, "elapsed", elapsed.Round(time.Millisecond))
		failed := status.SubsystemFailed(err.Error())
		for _, id := range a.platforms {
			for _, u := range usernames {
				outcomes = append(outcomes, status.Outcome{Platform: id, Username: u, Status: failed})
			}
		}
		return status.Batch{Name: BatchName, Outcomes: outcomes, Duration: elapsed}
	}

	wanted := make(map[pair]bool, cap(outcomes))
	for _, id := range a.platforms {
		for _, u := range usernames {
			wanted[pair{id, u}] = true
		}
	}

	got := make(map[pair]status.Status, len(records))
	for _, r := range records {
		key := pair{r.Platform, r.Query}
		if !wanted[key] {
			a.logger.Debug("ignoring unrequested record", "platform", r.Platform, "username", r.Query)
			continue
		}
		if _, dup := got[key]; dup {
			a.logger.Debug("ignoring duplicate record", "platform", r.Platform, "username", r.Query)
			continue
		}
		got[key] = recordStatus(r)
	}

	missing := 0
	for _, id := range a.platforms {
		for _, u := range usernames {
			st, ok := got[pair{id, u}]
			if !ok {
				st = status.NoResult()
				missing++
			}
			outcomes = append(outcomes, status.Outcome{Platform: id, Username: u, Status: st})
		}
	}

	a.logger.Info("delegated checks done",
		"records", len(records),
		"missing", missing,
		"elapsed", elapsed.Round(time.Millisecond))

	return status.Batch{Name: BatchName, Outcomes: outcomes, Duration: elapsed}
}

// query isolates the batch call so that a panicking subsystem degrades
// the batch like any other failure.
func (a *Adapter) query(ctx context.Context, usernames []string) (records []Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic: %v", r)
		}
	}()
	return a.batcher.Query(ctx, usernames, a.platforms)
}

func recordStatus(r Record) status.Status {
	switch {
	case r.Available == nil:
		if r.Message == "" {
			return status.Error("unknown")
		}
		return status.Error(r.Message)
	case *r.Available:
		return status.Available()
	default:
		return status.Taken()
	}
}
