package platform

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/thoreinstein/namecheck/internal/errors"
)

// ID identifies a supported platform.
type ID string

// Probe platforms.
const (
	GitHub   ID = "github"
	YouTube  ID = "youtube"
	Telegram ID = "telegram"
	Snapchat ID = "snapchat"
)

// Delegated platforms.
const (
	Twitter   ID = "twitter"
	Instagram ID = "instagram"
	Reddit    ID = "reddit"
)

// Kind tells how a platform is checked.
type Kind int

const (
	// KindProbe platforms are checked with a direct HTTP probe.
	KindProbe Kind = iota
	// KindDelegated platforms are checked by the batch lookup subsystem.
	KindDelegated
)

func (k Kind) String() string {
	switch k {
	case KindProbe:
		return "probe"
	case KindDelegated:
		return "delegated"
	default:
		return "unknown"
	}
}

// String returns the platform identifier.
func (id ID) String() string { return string(id) }

// Spec returns the static description of the platform.
// It panics for identifiers outside the supported set.
func (id ID) Spec() Spec {
	s, ok := specs[id]
	if !ok {
		panic(fmt.Sprintf("platform: unknown id %q", string(id)))
	}
	return s
}

// Kind returns how the platform is checked.
func (id ID) Kind() Kind { return id.Spec().Kind }

// Parse converts a user-supplied name to an ID.
// Matching is case-insensitive and ignores surrounding whitespace.
func Parse(name string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := specs[id]; !ok {
		return "", errors.Wrapf(errors.ErrUnknownPlatform, "%q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return id, nil
}

// ParseAll converts names to IDs, dropping duplicates while keeping order.
func ParseAll(names []string) ([]ID, error) {
	seen := make(map[ID]bool, len(names))
	ids := make([]ID, 0, len(names))
	for _, n := range names {
		id, err := Parse(n)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// ValidName reports whether name is a supported platform identifier.
func ValidName(name string) bool {
	_, err := Parse(name)
	return err == nil
}

// All returns every supported platform, sorted by identifier.
func All() []ID {
	ids := make([]ID, 0, len(specs))
	for id := range specs {
		ids = append(ids, id)
	}
	Sort(ids)
	return ids
}

// Names returns every supported platform identifier as strings, sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, id := range all {
		names[i] = string(id)
	}
	return names
}

// Probed returns the probe platforms, sorted.
func Probed() []ID { return OfKind(All(), KindProbe) }

// Delegated returns the delegated platforms, sorted.
func Delegated() []ID { return OfKind(All(), KindDelegated) }

// OfKind filters ids down to those of kind k, preserving order.
func OfKind(ids []ID, k Kind) []ID {
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if id.Kind() == k {
			out = append(out, id)
		}
	}
	return out
}

// Sort orders ids by identifier in place.
func Sort(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// ProfileURL builds the profile URL for username under base.
// An empty base selects the platform's well-known base URL.
func ProfileURL(id ID, base, username string) string {
	spec := id.Spec()
	if base == "" {
		base = spec.BaseURL
	}
	return strings.TrimRight(base, "/") + fmt.Sprintf(spec.ProfilePath, url.PathEscape(username))
}
