package store

import (
	"encoding/json"
	"fmt"

	"shift-planner/internal/models"
)

// Authenticate matches the given credentials against the stored records and
// returns the stripped user. Comparison is exact match on username and
// password; records with an empty username (quick-added workers) never
// match. Failure is ErrInvalidCredentials either way.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	if username == "" {
		return nil, ErrInvalidCredentials
	}
	records, err := s.usersWithCredentials()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Username == username && r.Password == password {
			u := r.User
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// CurrentSession returns the persisted signed-in user, or nil when nobody is
// signed in.
func (s *Store) CurrentSession() (*models.User, error) {
	raw, ok, err := s.kv.Get(keySession)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", keySession, err)
	}
	if !ok {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keySession, err)
	}
	return &u, nil
}

// SetCurrentSession persists the signed-in user. A nil user clears the
// session key.
func (s *Store) SetCurrentSession(u *models.User) error {
	if u == nil {
		if err := s.kv.Delete(keySession); err != nil {
			return fmt.Errorf("clear %s: %w", keySession, err)
		}
		return nil
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keySession, err)
	}
	if err := s.kv.Set(keySession, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", keySession, err)
	}
	return nil
}
