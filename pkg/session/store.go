package session

import (
	"github.com/nordclinic/bookctl/pkg/types"
)

// Store persists the authenticated session across process runs. It is the
// single source of truth for "is the user logged in"; it never talks to
// the network and never validates token authenticity (the backend rejects
// stale tokens on use).
type Store interface {
	// Load returns the stored session, or nil when none exists. Corrupt
	// stored data is cleared and reported as no session, not as an error.
	Load() (*types.Session, error)

	// Save persists the token and user record together.
	Save(sess *types.Session) error

	// Clear removes any stored session. Idempotent.
	Clear() error
}
