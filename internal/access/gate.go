// Package access decides whether a request for a protected area is rendered,
// held behind a placeholder while identity resolves, or redirected.
package access

import "github.com/Srivastav4327/RentMate/internal/models"

type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateUser
	StateAdmin
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	}
	return "unknown"
}

// StateOf maps a resolved identity to a gate state.
func StateOf(id models.Identity) State {
	switch {
	case !id.Resolved:
		return StateLoading
	case !id.Authenticated:
		return StateUnauthenticated
	case id.Role == models.RoleAdmin:
		return StateAdmin
	default:
		return StateUser
	}
}

type Requirement int

const (
	RequireAuth Requirement = iota
	RequireAdmin
)

type Outcome int

const (
	Render Outcome = iota
	Placeholder
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case Placeholder:
		return "placeholder"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

// Decision is the gate verdict. From is set only on login redirects and
// carries the originally requested location.
type Decision struct {
	Outcome  Outcome
	Location string
	From     string
}

type Gate struct {
	LoginPath   string
	LandingPath string
}

var DefaultGate = Gate{LoginPath: "/login", LandingPath: "/"}

func (g Gate) Decide(state State, req Requirement, requested string) Decision {
	switch state {
	case StateLoading:
		return Decision{Outcome: Placeholder}
	case StateAdmin:
		return Decision{Outcome: Render}
	case StateUser:
		if req == RequireAdmin {
			return Decision{Outcome: Redirect, Location: g.LandingPath}
		}
		return Decision{Outcome: Render}
	default:
		return Decision{Outcome: Redirect, Location: g.LoginPath, From: requested}
	}
}
