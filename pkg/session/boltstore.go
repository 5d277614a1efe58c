package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/nordclinic/bookctl/pkg/log"
	"github.com/nordclinic/bookctl/pkg/types"
)

var (
	bucketSession = []byte("session")

	keyToken = []byte("token")
	keyUser  = []byte("user")
)

// BoltStore implements Store on a local BoltDB file, so the session
// survives process restarts the way browser local storage survives page
// reloads.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if needed) the session database under dataDir
func NewBoltStore(dataDir string) (*BoltStore, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "bookctl.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Load returns the stored session. A missing entry means logged out. An
// undecodable user record also removes the stored token, so a token never
// outlives the user record it was issued for.
func (s *BoltStore) Load() (*types.Session, error) {
	var (
		sess    *types.Session
		corrupt bool
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		token := b.Get(keyToken)
		userData := b.Get(keyUser)
		if token == nil || userData == nil {
			return nil
		}

		var user types.User
		if err := json.Unmarshal(userData, &user); err != nil {
			corrupt = true
			return nil
		}

		sess = &types.Session{Token: string(token), User: user}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	if corrupt {
		logger := log.WithComponent("session")
		logger.Warn().Msg("stored session is corrupt, clearing it")
		if err := s.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return sess, nil
}

// Save persists the token and serialized user in one transaction
func (s *BoltStore) Save(sess *types.Session) error {
	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put(keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return b.Put(keyUser, userData)
	})
}

// Clear removes both entries in one transaction
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Delete(keyToken); err != nil {
			return err
		}
		return b.Delete(keyUser)
	})
}
