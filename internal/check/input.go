package check

import "strings"

// ParseHandles splits a comma-separated list of handles. Each handle is
// trimmed and lower-cased; empties and repeats are dropped, keeping the
// first occurrence's position.
func ParseHandles(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	handles := make([]string, 0, len(parts))
	for _, p := range parts {
		h := strings.ToLower(strings.TrimSpace(p))
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		handles = append(handles, h)
	}
	return handles
}
