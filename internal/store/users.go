package store

import (
	"github.com/sirupsen/logrus"

	"shift-planner/internal/models"
)

// usersWithCredentials returns the full storage records. When the collection
// does not exist yet it is seeded with the default administrator and
// persisted before returning. Seeding happens at most once: an existing key,
// even an empty list, is left alone.
func (s *Store) usersWithCredentials() ([]models.UserRecord, error) {
	records, ok, err := readList[models.UserRecord](s, keyUsers)
	if err != nil {
		return nil, err
	}
	if ok {
		return records, nil
	}

	admin := models.UserRecord{
		User: models.User{
			ID:        s.newID(),
			Name:      SeedAdminName,
			Role:      models.RoleAdmin,
			CreatedAt: s.now(),
		},
		Username: SeedAdminUsername,
		Password: SeedAdminPassword,
	}
	records = []models.UserRecord{admin}
	if err := writeList(s, keyUsers, records); err != nil {
		return nil, err
	}
	s.logger.WithField("username", SeedAdminUsername).Info("seeded default administrator")
	return records, nil
}

// Users returns every user with credentials stripped, in insertion order.
func (s *Store) Users() ([]models.User, error) {
	records, err := s.usersWithCredentials()
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(records))
	for _, r := range records {
		users = append(users, r.User)
	}
	return users, nil
}

// UserByID returns the user with the given id, or nil when absent.
func (s *Store) UserByID(id string) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// Workers returns the users that hold the worker role.
func (s *Store) Workers() ([]models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	workers := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleWorker {
			workers = append(workers, u)
		}
	}
	return workers, nil
}

// AddUser creates a user that can sign in. Fails with ErrDuplicateUsername
// when any existing record already carries the username.
func (s *Store) AddUser(username, password, name string, role models.Role) (*models.User, error) {
	records, err := s.usersWithCredentials()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Username == username {
			return nil, ErrDuplicateUsername
		}
	}

	rec := models.UserRecord{
		User: models.User{
			ID:        s.newID(),
			Name:      name,
			Role:      role,
			CreatedAt: s.now(),
		},
		Username: username,
		Password: password,
	}
	records = append(records, rec)
	if err := writeList(s, keyUsers, records); err != nil {
		return nil, err
	}

	u := rec.User
	return &u, nil
}

// AddWorker creates a worker with empty credentials. It cannot sign in and
// never collides with a credentialed login.
func (s *Store) AddWorker(name string) (*models.User, error) {
	records, err := s.usersWithCredentials()
	if err != nil {
		return nil, err
	}

	rec := models.UserRecord{
		User: models.User{
			ID:        s.newID(),
			Name:      name,
			Role:      models.RoleWorker,
			CreatedAt: s.now(),
		},
	}
	records = append(records, rec)
	if err := writeList(s, keyUsers, records); err != nil {
		return nil, err
	}

	u := rec.User
	return &u, nil
}

// UserUpdate names the fields UpdateUser may change. Nil fields are left
// untouched.
type UserUpdate struct {
	Name *string
	Role *models.Role
}

// UpdateUser applies a partial update and returns the updated stripped user,
// or nil when no user has the id.
func (s *Store) UpdateUser(id string, upd UserUpdate) (*models.User, error) {
	records, err := s.usersWithCredentials()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	if upd.Name != nil {
		records[idx].Name = *upd.Name
	}
	if upd.Role != nil {
		records[idx].Role = *upd.Role
	}
	if err := writeList(s, keyUsers, records); err != nil {
		return nil, err
	}

	u := records[idx].User
	return &u, nil
}

// DeleteUser removes the user and every shift the user owns. Absences filed
// against those shifts are left in place; joined reads filter the dangling
// shifts out instead.
func (s *Store) DeleteUser(id string) error {
	records, err := s.usersWithCredentials()
	if err != nil {
		return err
	}
	kept := make([]models.UserRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if err := writeList(s, keyUsers, kept); err != nil {
		return err
	}

	shifts, err := s.Shifts()
	if err != nil {
		return err
	}
	keptShifts := make([]models.Shift, 0, len(shifts))
	removed := 0
	for _, sh := range shifts {
		if sh.UserID == id {
			removed++
			continue
		}
		keptShifts = append(keptShifts, sh)
	}
	if err := writeList(s, keyShifts, keptShifts); err != nil {
		return err
	}
	if removed > 0 {
		s.logger.WithFields(logrus.Fields{
			"user_id": id,
			"shifts":  removed,
		}).Info("cascade deleted shifts of removed user")
	}
	return nil
}
