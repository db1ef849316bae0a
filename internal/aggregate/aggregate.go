// Package aggregate merges the outcomes of every phase of a run into a
// single result table keyed by username and platform.
package aggregate

import (
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/status"
)

// Table maps username to platform to status.
type Table map[string]map[platform.ID]status.Status

// Get returns the status of a cell and whether it exists.
func (t Table) Get(username string, id platform.ID) (status.Status, bool) {
	row, ok := t[username]
	if !ok {
		return status.Status{}, false
	}
	st, ok := row[id]
	return st, ok
}

// Aggregator builds a Table for a fixed set of usernames and platforms.
// It is the only writer of the table and is not safe for concurrent use.
type Aggregator struct {
	usernames []string
	platforms []platform.ID
	table     Table
}

// New creates an Aggregator expecting one status for every pair.
func New(usernames []string, platforms []platform.ID) *Aggregator {
	t := make(Table, len(usernames))
	for _, u := range usernames {
		t[u] = make(map[platform.ID]status.Status, len(platforms))
	}
	return &Aggregator{usernames: usernames, platforms: platforms, table: t}
}

// Merge records outcomes. An outcome for a pair outside the requested set,
// for a pair already filled, or without a status is a bug in the caller;
// the whole batch is then rejected and the table is left unchanged.
func (a *Aggregator) Merge(outcomes []status.Outcome) error {
	requested := make(map[platform.ID]bool, len(a.platforms))
	for _, id := range a.platforms {
		requested[id] = true
	}

	type key struct {
		id       platform.ID
		username string
	}
	seen := make(map[key]bool, len(outcomes))
	for _, o := range outcomes {
		row, ok := a.table[o.Username]
		if !ok || !requested[o.Platform] {
			return errors.AssertionFailedf("outcome for unrequested pair %s/%s", o.Platform, o.Username)
		}
		if _, dup := row[o.Platform]; dup || seen[key{o.Platform, o.Username}] {
			return errors.AssertionFailedf("duplicate outcome for %s/%s", o.Platform, o.Username)
		}
		if o.Status.IsZero() {
			return errors.AssertionFailedf("empty status for %s/%s", o.Platform, o.Username)
		}
		seen[key{o.Platform, o.Username}] = true
	}

	for _, o := range outcomes {
		a.table[o.Username][o.Platform] = o.Status
	}
	return nil
}

// Table checks that every requested pair has exactly one status and
// returns a copy of the table.
func (a *Aggregator) Table() (Table, error) {
	out := make(Table, len(a.table))
	for _, u := range a.usernames {
		row := a.table[u]
		for _, id := range a.platforms {
			if _, ok := row[id]; !ok {
				return nil, errors.AssertionFailedf("missing outcome for %s/%s", id, u)
			}
		}
		cp := make(map[platform.ID]status.Status, len(row))
		for id, st := range row {
			cp[id] = st
		}
		out[u] = cp
	}
	return out, nil
}
