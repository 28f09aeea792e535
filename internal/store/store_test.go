package store

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"shift-planner/internal/kv"
	"shift-planner/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return New(kv.NewMemory(), logger)
}

func addTestWorker(t *testing.T, s *Store, name string) models.User {
	t.Helper()
	u, err := s.AddWorker(name)
	require.NoError(t, err)
	return *u
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	w := addTestWorker(t, s, "Ana")
	_, err := s.AddShift(w.ID, "2024-03-01", models.ShiftFirst, models.StatusApproved)
	require.NoError(t, err)
	_, err = s.AddAbsence("some-shift", "sick", "")
	require.NoError(t, err)
	require.NoError(t, s.SetCurrentSession(&w))

	require.NoError(t, s.ClearAll())

	for _, key := range []string{keyUsers, keyShifts, keyAbsences, keySession} {
		_, ok, err := s.kv.Get(key)
		require.NoError(t, err)
		require.False(t, ok, "key %s should be gone", key)
	}

	// The next user read starts over with a fresh administrator.
	users, err := s.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, SeedAdminName, users[0].Name)
}
