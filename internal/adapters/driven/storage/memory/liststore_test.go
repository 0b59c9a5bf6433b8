package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStore_GetMissing(t *testing.T) {
	s := NewListStore()

	val, ok, err := s.Get("want_to_read")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestListStore_SetGet(t *testing.T) {
	s := NewListStore()

	require.NoError(t, s.Set("want_to_read", `[{"id":"b1"}]`))

	val, ok, err := s.Get("want_to_read")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b1"}]`, val)
}

func TestListStore_Overwrite(t *testing.T) {
	s := NewListStore()

	require.NoError(t, s.Set("already_read", "[]"))
	require.NoError(t, s.Set("already_read", `[{"id":"b2"}]`))

	val, ok, err := s.Get("already_read")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"b2"}]`, val)
}
