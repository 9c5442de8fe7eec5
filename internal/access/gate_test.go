package access

import (
	"testing"

	"github.com/Srivastav4327/RentMate/internal/models"
)

func TestStateOf(t *testing.T) {
	cases := []struct {
		id   models.Identity
		want State
	}{
		{models.Identity{}, StateLoading},
		{models.Identity{Resolved: true}, StateUnauthenticated},
		{models.Identity{Resolved: true, Authenticated: true, ID: "u1", Role: models.RoleUser}, StateUser},
		{models.Identity{Resolved: true, Authenticated: true, ID: "a1", Role: models.RoleAdmin}, StateAdmin},
	}
	for _, tc := range cases {
		if got := StateOf(tc.id); got != tc.want {
			t.Fatalf("StateOf(%+v) = %s, want %s", tc.id, got, tc.want)
		}
	}
}

func TestDecide(t *testing.T) {
	g := Gate{LoginPath: "/login", LandingPath: "/"}
	cases := []struct {
		name  string
		state State
		req   Requirement
		want  Decision
	}{
		{"loading auth", StateLoading, RequireAuth, Decision{Outcome: Placeholder}},
		{"loading admin", StateLoading, RequireAdmin, Decision{Outcome: Placeholder}},
		{"anonymous auth", StateUnauthenticated, RequireAuth, Decision{Outcome: Redirect, Location: "/login", From: "/dashboard"}},
		{"anonymous admin", StateUnauthenticated, RequireAdmin, Decision{Outcome: Redirect, Location: "/login", From: "/dashboard"}},
		{"user auth", StateUser, RequireAuth, Decision{Outcome: Render}},
		{"admin auth", StateAdmin, RequireAuth, Decision{Outcome: Render}},
		{"user admin", StateUser, RequireAdmin, Decision{Outcome: Redirect, Location: "/"}},
		{"admin admin", StateAdmin, RequireAdmin, Decision{Outcome: Render}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Decide(tc.state, tc.req, "/dashboard"); got != tc.want {
				t.Fatalf("expected %+v got %+v", tc.want, got)
			}
		})
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		d := DefaultGate.Decide(StateUnauthenticated, RequireAdmin, "/admin")
		if d.Outcome != Redirect || d.Location != "/login" || d.From != "/admin" {
			t.Fatalf("unexpected decision %+v", d)
		}
	}
}
