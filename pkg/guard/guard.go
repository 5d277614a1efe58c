package guard

import (
	"github.com/nordclinic/bookctl/pkg/types"
)

// Paths understood by the client
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
	PathAdmin     = "/admin"
)

// Action is the outcome kind of a navigation decision
type Action string

const (
	// ActionRender means the requested path may be shown
	ActionRender Action = "render"
	// ActionRedirect means navigate to Decision.Path instead
	ActionRedirect Action = "redirect"
	// ActionNotFound means the path maps to no known view
	ActionNotFound Action = "notfound"
)

// Decision tells the caller whether to render the requested path or
// navigate elsewhere first
type Decision struct {
	Action Action
	Path   string
}

// Home returns the dashboard path for the session's role
func Home(sess *types.Session) string {
	if sess.Valid() && sess.User.Role == types.RoleAdmin {
		return PathAdmin
	}
	return PathDashboard
}

// Decide resolves a navigation target against the current session. It is
// a pure function: no storage reads, no rendering, no side effects. A
// role-mismatched session is always redirected, never rendered and never
// treated as an error.
func Decide(sess *types.Session, path string) Decision {
	loggedIn := sess.Valid()

	switch path {
	case PathLogin, PathRegister:
		if loggedIn {
			return Decision{Action: ActionRedirect, Path: Home(sess)}
		}
		return Decision{Action: ActionRender, Path: path}

	case PathDashboard:
		if loggedIn && sess.User.Role == types.RolePatient {
			return Decision{Action: ActionRender, Path: path}
		}
		return Decision{Action: ActionRedirect, Path: PathLogin}

	case PathAdmin:
		if loggedIn && sess.User.Role == types.RoleAdmin {
			return Decision{Action: ActionRender, Path: path}
		}
		return Decision{Action: ActionRedirect, Path: PathLogin}

	case PathRoot:
		if loggedIn {
			return Decision{Action: ActionRedirect, Path: Home(sess)}
		}
		return Decision{Action: ActionRedirect, Path: PathLogin}

	default:
		return Decision{Action: ActionNotFound, Path: path}
	}
}
