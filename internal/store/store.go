// Package store implements the planner's data store: user, shift and absence
// CRUD plus authentication, persisted as JSON collections in a kv.Store.
//
// Every write reads the full collection, rewrites it in memory and persists
// it back as one step. Operations run to completion before returning and are
// meant for single-goroutine use; the planner never calls the store from
// more than one goroutine.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shift-planner/internal/kv"
)

// Backing keys. One key per collection plus one for the signed-in session.
const (
	keyUsers    = "planner_users"
	keyShifts   = "planner_shifts"
	keyAbsences = "planner_absences"
	keySession  = "planner_current_user"
)

// Credentials of the administrator seeded on first access to the user
// collection.
const (
	SeedAdminName     = "Administrator"
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin123"
)

// Store owns the four backing collections. No other component writes to the
// backing store directly.
type Store struct {
	kv     kv.Store
	logger *logrus.Logger

	newID func() string
	now   func() string
}

// New builds a Store over the given backing. A nil logger gets a default.
func New(backing kv.Store, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		kv:     backing,
		logger: logger,
		newID:  uuid.NewString,
		now:    func() string { return time.Now().UTC().Format(time.RFC3339) },
	}
}

// ClearAll erases every backing key, session included. Administrative and
// test use only; the next user read reseeds the administrator.
func (s *Store) ClearAll() error {
	for _, key := range []string{keyUsers, keyShifts, keyAbsences, keySession} {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	s.logger.Info("cleared all planner data")
	return nil
}

// readList decodes the collection stored under key. ok is false when the key
// has never been written.
func readList[T any](s *Store, key string) (list []T, ok bool, err error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return list, true, nil
}

// writeList persists the whole collection under key.
func writeList[T any](s *Store, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
