package session

import (
	"sync"

	"github.com/nordclinic/bookctl/pkg/types"
)

// MemStore keeps the session in process memory. It exists so tests and
// callers that must not touch the local database can substitute it for
// the BoltDB-backed store.
type MemStore struct {
	mu   sync.Mutex
	sess *types.Session
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load() (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	sess := *s.sess
	return &sess, nil
}

func (s *MemStore) Save(sess *types.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sess = &copied
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
