// Package routes holds the route-level authentication markers. Exemptions are
// declared at registration time and read directly at dispatch time; there is
// no runtime reflection. An endpoint-level marker always overrides its
// group's marker.
package routes

import "strings"

// Access is the tri-state exemption marker. Inherit defers to the owning
// group; an unmarked route in an unmarked group is protected.
type Access int

const (
	Inherit Access = iota
	Public
	Protected
)

type routeKey struct {
	method string
	path   string
}

// Table maps registered routes and group prefixes to their access markers.
// It is built once during router construction and read-only afterwards, so
// concurrent request-time lookups need no locking.
type Table struct {
	endpoints map[routeKey]Access
	groups    map[string]Access
}

func NewTable() *Table {
	return &Table{
		endpoints: make(map[routeKey]Access),
		groups:    make(map[string]Access),
	}
}

// MarkGroup records the marker for every route under prefix. When nested
// prefixes both match a path, the longest one wins.
func (t *Table) MarkGroup(prefix string, access Access) {
	t.groups[prefix] = access
}

// Mark records the marker for a single endpoint, keyed by method and the
// registered path pattern (e.g. "/messages/:id").
func (t *Table) Mark(method, path string, access Access) {
	t.endpoints[routeKey{method: method, path: path}] = access
}

// IsPublic reports whether the route is exempt from authentication.
// Precedence: endpoint marker, then longest matching group marker, then
// protected by default.
func (t *Table) IsPublic(method, path string) bool {
	if access, ok := t.endpoints[routeKey{method: method, path: path}]; ok && access != Inherit {
		return access == Public
	}

	bestLen := -1
	best := Protected
	for prefix, access := range t.groups {
		if access == Inherit || !matchesPrefix(path, prefix) {
			continue
		}
		if len(prefix) > bestLen {
			bestLen = len(prefix)
			best = access
		}
	}
	return best == Public
}

// matchesPrefix reports whether path falls under prefix at a segment
// boundary, so "/auth" matches "/auth/login" but not "/author".
func matchesPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
