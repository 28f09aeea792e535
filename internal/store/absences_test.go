package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift-planner/internal/models"
)

func TestAddAbsenceDefaults(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	// The shift id is taken as given; nothing checks it against the shift
	// collection.
	ab, err := s.AddAbsence("shift-1", "sick", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, ab.Status)
	assert.Nil(t, ab.ReplacementUserID)
	assert.NotEmpty(t, ab.ID)
	assert.NotEmpty(t, ab.CreatedAt)

	withRepl, err := s.AddAbsence("shift-2", "vacation", "worker-9")
	require.NoError(t, err)
	require.NotNil(t, withRepl.ReplacementUserID)
	assert.Equal(t, "worker-9", *withRepl.ReplacementUserID)
}

func TestAbsencesByShift(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	first, err := s.AddAbsence("shift-1", "sick", "")
	require.NoError(t, err)
	_, err = s.AddAbsence("shift-2", "family", "")
	require.NoError(t, err)
	second, err := s.AddAbsence("shift-1", "still sick", "")
	require.NoError(t, err)

	filed, err := s.AbsencesByShift("shift-1")
	require.NoError(t, err)
	require.Len(t, filed, 2)
	assert.Equal(t, first.ID, filed[0].ID)
	assert.Equal(t, second.ID, filed[1].ID)
}

func TestUpdateAbsence(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ab, err := s.AddAbsence("shift-1", "sick", "")
	require.NoError(t, err)

	st := models.StatusApproved
	got, err := s.UpdateAbsence(ab.ID, AbsenceUpdate{Status: &st})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Equal(t, "sick", got.Reason, "reason stays untouched")

	repl := "worker-9"
	got, err = s.UpdateAbsence(ab.ID, AbsenceUpdate{ReplacementUserID: &repl})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.ReplacementUserID)
	assert.Equal(t, "worker-9", *got.ReplacementUserID)

	// A pointer to the empty string clears the replacement again.
	empty := ""
	got, err = s.UpdateAbsence(ab.ID, AbsenceUpdate{ReplacementUserID: &empty})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.ReplacementUserID)

	missing, err := s.UpdateAbsence("nope", AbsenceUpdate{Status: &st})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
