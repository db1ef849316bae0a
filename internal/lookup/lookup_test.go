package lookup_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/lookup"
	"github.com/thoreinstein/namecheck/internal/lookup/mocks"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/status"
)

func ptr(b bool) *bool { return &b }

func statuses(b status.Batch) map[string]status.Status {
	m := make(map[string]status.Status, len(b.Outcomes))
	for _, o := range b.Outcomes {
		m[string(o.Platform)+"/"+o.Username] = o.Status
	}
	return m
}

func TestAdapter_MapsRecords(t *testing.T) {
	platforms := []platform.ID{platform.Reddit, platform.Twitter}
	usernames := []string{"alice", "bob"}

	m := mocks.NewMockBatcher(t)
	m.EXPECT().Query(mock.Anything, usernames, platforms).Return([]lookup.Record{
		{Query: "alice", Platform: platform.Reddit, Available: ptr(true)},
		{Query: "alice", Platform: platform.Twitter, Available: ptr(false)},
		{Query: "bob", Platform: platform.Reddit, Message: "suspended"},
		{Query: "bob", Platform: platform.Twitter},
	}, nil)

	batch := lookup.NewAdapter(m, platforms, logging.ForTest(t)).Run(t.Context(), usernames)

	want := map[string]status.Status{
		"reddit/alice":  status.Available(),
		"twitter/alice": status.Taken(),
		"reddit/bob":    status.Error("suspended"),
		"twitter/bob":   status.Error("unknown"),
	}
	got := statuses(batch)
	if len(batch.Outcomes) != len(want) {
		t.Fatalf("len(Outcomes) = %d, want %d", len(batch.Outcomes), len(want))
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %v, want %v", k, got[k], w)
		}
	}
	if batch.Name != lookup.BatchName {
		t.Errorf("Name = %q", batch.Name)
	}
}

func TestAdapter_MissingPairsAreNoResult(t *testing.T) {
	platforms := []platform.ID{platform.Instagram, platform.Reddit, platform.Twitter}
	usernames := []string{"alice", "bob"}

	m := mocks.NewMockBatcher(t)
	m.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return([]lookup.Record{
		{Query: "alice", Platform: platform.Reddit, Available: ptr(true)},
		{Query: "alice", Platform: platform.Reddit, Available: ptr(false)},
		{Query: "mallory", Platform: platform.Reddit, Available: ptr(true)},
		{Query: "bob", Platform: platform.GitHub, Available: ptr(true)},
	}, nil)

	batch := lookup.NewAdapter(m, platforms, nil).Run(t.Context(), usernames)

	if len(batch.Outcomes) != len(platforms)*len(usernames) {
		t.Fatalf("len(Outcomes) = %d, want %d", len(batch.Outcomes), len(platforms)*len(usernames))
	}
	for _, o := range batch.Outcomes {
		want := status.NoResult()
		if o.Platform == platform.Reddit && o.Username == "alice" {
			want = status.Available()
		}
		if o.Status != want {
			t.Errorf("%s/%s = %v, want %v", o.Platform, o.Username, o.Status, want)
		}
	}
}

func TestAdapter_WholesaleFailure(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *mocks.MockBatcher)
		wantTag string
	}{
		{
			name: "error",
			setup: func(m *mocks.MockBatcher) {
				m.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).
					Return([]lookup.Record{{Query: "alice", Platform: platform.Reddit, Available: ptr(true)}}, errors.New("service down"))
			},
			wantTag: "sfailed:service down",
		},
		{
			name: "panic",
			setup: func(m *mocks.MockBatcher) {
				m.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).
					RunAndReturn(func(context.Context, []string, []platform.ID) ([]lookup.Record, error) {
						panic("nil map")
					})
			},
			wantTag: "sfailed:panic: nil map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewMockBatcher(t)
			tt.setup(m)
			platforms := platform.Delegated()
			usernames := []string{"alice", "bob"}

			batch := lookup.NewAdapter(m, platforms, logging.ForTest(t)).Run(t.Context(), usernames)

			if len(batch.Outcomes) != len(platforms)*len(usernames) {
				t.Fatalf("len(Outcomes) = %d", len(batch.Outcomes))
			}
			for _, o := range batch.Outcomes {
				if !o.Status.IsError() || !strings.HasPrefix(o.Status.Reason(), status.PrefixSubsystem) {
					t.Errorf("%s/%s = %v, want sfailed", o.Platform, o.Username, o.Status)
				}
				if o.Status.Reason() != tt.wantTag {
					t.Errorf("reason = %q, want %q", o.Status.Reason(), tt.wantTag)
				}
			}
		})
	}
}

func TestAdapter_Platforms(t *testing.T) {
	a := lookup.NewAdapter(mocks.NewMockBatcher(t), platform.Delegated(), nil)
	if got := a.Platforms(); len(got) != 3 {
		t.Errorf("Platforms() = %v", got)
	}
}
