package routes

import (
	"net/http"
	"testing"
)

func TestTable_DefaultIsProtected(t *testing.T) {
	table := NewTable()
	if table.IsPublic(http.MethodGet, "/projects") {
		t.Fatalf("unmarked route must be protected")
	}
}

func TestTable_GroupMarkerApplies(t *testing.T) {
	table := NewTable()
	table.MarkGroup("/auth", Public)

	if !table.IsPublic(http.MethodPost, "/auth/login") {
		t.Fatalf("route under public group should be public")
	}
	if !table.IsPublic(http.MethodPost, "/auth") {
		t.Fatalf("group prefix itself should be public")
	}
	if table.IsPublic(http.MethodGet, "/authors") {
		t.Fatalf("prefix match must respect segment boundaries")
	}
}

func TestTable_EndpointOverridesGroup(t *testing.T) {
	table := NewTable()

	// Public endpoint inside a protected group: reachable without a token.
	table.MarkGroup("/projects", Protected)
	table.Mark(http.MethodGet, "/projects/featured", Public)
	if !table.IsPublic(http.MethodGet, "/projects/featured") {
		t.Fatalf("endpoint-level public must win over protected group")
	}
	if table.IsPublic(http.MethodGet, "/projects") {
		t.Fatalf("rest of the group stays protected")
	}

	// Protected endpoint inside a public group: still requires a token.
	table.MarkGroup("/info", Public)
	table.Mark(http.MethodPost, "/info/admin", Protected)
	if table.IsPublic(http.MethodPost, "/info/admin") {
		t.Fatalf("endpoint-level protected must win over public group")
	}
	if !table.IsPublic(http.MethodGet, "/info/version") {
		t.Fatalf("rest of the group stays public")
	}
}

func TestTable_InheritFallsThrough(t *testing.T) {
	table := NewTable()
	table.MarkGroup("/auth", Public)
	table.Mark(http.MethodPost, "/auth/login", Inherit)

	if !table.IsPublic(http.MethodPost, "/auth/login") {
		t.Fatalf("inherit marker should defer to the group")
	}
}

func TestTable_LongestGroupPrefixWins(t *testing.T) {
	table := NewTable()
	table.MarkGroup("/api", Public)
	table.MarkGroup("/api/private", Protected)

	if table.IsPublic(http.MethodGet, "/api/private/data") {
		t.Fatalf("more specific group must win")
	}
	if !table.IsPublic(http.MethodGet, "/api/open") {
		t.Fatalf("outer group still applies elsewhere")
	}
}

func TestTable_MethodIsPartOfTheKey(t *testing.T) {
	table := NewTable()
	table.Mark(http.MethodGet, "/projects/:id", Public)

	if !table.IsPublic(http.MethodGet, "/projects/:id") {
		t.Fatalf("marked method should be public")
	}
	if table.IsPublic(http.MethodDelete, "/projects/:id") {
		t.Fatalf("other methods on the same path stay protected")
	}
}
