package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ListStore {
	t.Helper()
	s, err := NewListStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestListStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	val, ok, err := s.Get("want_to_read")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestListStore_SetGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("want_to_read", `[{"id":"b1","title":"A"}]`))

	val, ok, err := s.Get("want_to_read")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b1","title":"A"}]`, val)
}

func TestListStore_Overwrite(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("already_read", "[]"))
	require.NoError(t, s.Set("already_read", `[{"id":"b2"}]`))

	val, ok, err := s.Get("already_read")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b2"}]`, val)
}

func TestListStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewListStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("want_to_read", `[{"id":"b1"}]`))
	require.NoError(t, first.Close())

	second, err := NewListStore(dir)
	require.NoError(t, err)
	defer second.Close()

	val, ok, err := second.Get("want_to_read")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b1"}]`, val)
}
