package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGormStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "planner.db")
	s, err := NewGormStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, ok, err := s.Get("users")
	require.NoError(t, err)
	require.False(t, ok, "unwritten key should be absent")

	require.NoError(t, s.Set("users", `[]`))
	v, ok, err := s.Get("users")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, v)

	require.NoError(t, s.Set("users", `[{"id":"u1"}]`))
	v, ok, err = s.Get("users")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"u1"}]`, v, "set should replace the previous value")

	require.NoError(t, s.Delete("users"))
	_, ok, err = s.Get("users")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Delete("users"), "deleting an absent key is not an error")
}

func TestGormStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "planner.db")

	s, err := NewGormStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("shifts", `[{"id":"s1"}]`))
	require.NoError(t, s.Close())

	reopened, err := NewGormStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	v, ok, err := reopened.Get("shifts")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"s1"}]`, v)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	m := NewMemory()

	_, ok, err := m.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set("k", "v1"))
	require.NoError(t, m.Set("k", "v2"))

	v, ok, err := m.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v2", v)

	require.NoError(t, m.Delete("k"))
	_, ok, err = m.Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}
