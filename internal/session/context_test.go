package session_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift-planner/internal/kv"
	"shift-planner/internal/session"
	"shift-planner/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return store.New(kv.NewMemory(), logger)
}

func TestNewSeedsAndStartsSignedOut(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := session.New(st, nil)

	assert.False(t, ctx.Loading())
	assert.Nil(t, ctx.CurrentUser())

	// Initialization ran the seeding path.
	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, store.SeedAdminName, users[0].Name)
}

func TestNewLoadsPersistedSession(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	u, err := st.Authenticate(store.SeedAdminUsername, store.SeedAdminPassword)
	require.NoError(t, err)
	require.NoError(t, st.SetCurrentSession(u))

	ctx := session.New(st, nil)
	require.NotNil(t, ctx.CurrentUser())
	assert.Equal(t, *u, *ctx.CurrentUser())
	assert.False(t, ctx.Loading())
}

func TestSignInAndOut(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := session.New(st, nil)

	require.NoError(t, ctx.SignIn(store.SeedAdminUsername, store.SeedAdminPassword))
	require.NotNil(t, ctx.CurrentUser())
	assert.Equal(t, store.SeedAdminName, ctx.CurrentUser().Name)

	// The session is persisted: a fresh context over the same store picks
	// it up.
	again := session.New(st, nil)
	require.NotNil(t, again.CurrentUser())
	assert.Equal(t, ctx.CurrentUser().ID, again.CurrentUser().ID)

	require.NoError(t, ctx.SignOut())
	assert.Nil(t, ctx.CurrentUser())

	persisted, err := st.CurrentSession()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := session.New(st, nil)

	err := ctx.SignIn(store.SeedAdminUsername, "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	assert.Nil(t, ctx.CurrentUser())

	// Unknown usernames fail with the same error, revealing nothing.
	err = ctx.SignIn("nobody", "whatever")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}
