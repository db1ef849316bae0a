package check_test

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/namecheck/internal/check"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/lookup"
	lookupmocks "github.com/thoreinstein/namecheck/internal/lookup/mocks"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/scheduler"
	schedmocks "github.com/thoreinstein/namecheck/internal/scheduler/mocks"
	"github.com/thoreinstein/namecheck/internal/status"
)

func TestRunner_Run(t *testing.T) {
	prober := schedmocks.NewMockProber(t)
	prober.EXPECT().Probe(mock.Anything, mock.Anything, mock.Anything).Return(status.Taken())

	yes := true
	batcher := lookupmocks.NewMockBatcher(t)
	batcher.EXPECT().Query(mock.Anything, []string{"zed", "amy"}, platform.Delegated()).
		Return([]lookup.Record{{Query: "amy", Platform: platform.Reddit, Available: &yes}}, nil)

	logger := logging.ForTest(t)
	r := check.NewRunner(
		scheduler.New(prober, logger),
		platform.Probed(),
		lookup.NewAdapter(batcher, platform.Delegated(), logger),
		logger,
	)

	res, err := r.Run(t.Context(), []string{"zed", "amy"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Usernames[0] != "amy" || res.Usernames[1] != "zed" {
		t.Errorf("Usernames = %v, want sorted", res.Usernames)
	}
	if len(res.Platforms) != len(platform.All()) {
		t.Errorf("Platforms = %v", res.Platforms)
	}
	if len(res.Phases) != 2 || res.Phases[0].Name != lookup.BatchName || res.Phases[1].Name != scheduler.BatchName {
		t.Errorf("Phases = %+v, want delegated then custom", res.Phases)
	}

	for _, u := range res.Usernames {
		for _, id := range res.Platforms {
			st, ok := res.Table.Get(u, id)
			if !ok {
				t.Errorf("missing cell %s/%s", u, id)
				continue
			}
			want := status.Taken()
			switch {
			case id.Kind() == platform.KindDelegated && u == "amy" && id == platform.Reddit:
				want = status.Available()
			case id.Kind() == platform.KindDelegated:
				want = status.NoResult()
			}
			if st != want {
				t.Errorf("%s/%s = %v, want %v", u, id, st, want)
			}
		}
	}
}

func TestRunner_NoDelegated(t *testing.T) {
	prober := schedmocks.NewMockProber(t)
	prober.EXPECT().Probe(mock.Anything, platform.GitHub, "amy").Return(status.Available())

	r := check.NewRunner(scheduler.New(prober, nil), []platform.ID{platform.GitHub}, nil, nil)
	res, err := r.Run(t.Context(), []string{"amy"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Phases) != 1 || len(res.Platforms) != 1 {
		t.Errorf("Phases = %+v, Platforms = %v", res.Phases, res.Platforms)
	}
}

func TestRunner_Progress(t *testing.T) {
	prober := schedmocks.NewMockProber(t)
	prober.EXPECT().Probe(mock.Anything, mock.Anything, mock.Anything).Return(status.Available())

	batcher := lookupmocks.NewMockBatcher(t)
	batcher.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	r := check.NewRunner(
		scheduler.New(prober, nil),
		[]platform.ID{platform.Telegram, platform.GitHub},
		lookup.NewAdapter(batcher, []platform.ID{platform.Reddit}, nil),
		nil,
	)
	var progress bytes.Buffer
	r.SetProgress(&progress)

	if _, err := r.Run(t.Context(), []string{"amy", "zed"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := regexp.MustCompile(`^running 2 delegated checks \(reddit\)\.\.\.\n` +
		`delegated checks done in \d+\.\d{2} sec\n` +
		`running 4 custom checks \(github, telegram\)\.\.\.\n` +
		`custom checks done in \d+\.\d{2} sec\n$`)
	if !want.MatchString(progress.String()) {
		t.Errorf("progress = %q", progress.String())
	}
}

func TestRunner_NoUsernames(t *testing.T) {
	r := check.NewRunner(scheduler.New(schedmocks.NewMockProber(t), nil), platform.Probed(), nil, nil)
	if _, err := r.Run(t.Context(), nil); !errors.Is(err, check.ErrNoUsernames) {
		t.Errorf("Run() error = %v, want ErrNoUsernames", err)
	}
}

func TestRunner_CancelledDiscardsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	batcher := lookupmocks.NewMockBatcher(t)
	batcher.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []string, []platform.ID) ([]lookup.Record, error) {
			cancel()
			return nil, context.Canceled
		})

	// The probe phase never starts once the run is cancelled.
	prober := schedmocks.NewMockProber(t)

	r := check.NewRunner(
		scheduler.New(prober, nil),
		platform.Probed(),
		lookup.NewAdapter(batcher, platform.Delegated(), nil),
		nil,
	)

	res, err := r.Run(ctx, []string{"amy"})
	if !errors.Is(err, check.ErrCancelled) {
		t.Errorf("Run() error = %v, want ErrCancelled", err)
	}
	if res != nil {
		t.Errorf("Run() returned partial result %+v", res)
	}
}
