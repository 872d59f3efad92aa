package memo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	_, ok, err := s.Get("boolean", id)
	require.NoError(t, err)
	assert.False(t, ok, "empty store has no entries")

	require.NoError(t, s.Put("boolean", id, "true"))

	v, ok, err := s.Get("boolean", id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	// Same identity under a different algebra name is a distinct entry.
	_, ok, err = s.Get("printer", id)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryStorePutReplaces(t *testing.T) {
	s := NewMemoryStore()
	id := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	require.NoError(t, s.Put("soft", id, "0.25"))
	require.NoError(t, s.Put("soft", id, "0.75"))

	v, ok, err := s.Get("soft", id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0.75", v)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryStoreClosed(t *testing.T) {
	s := NewMemoryStore()
	id := uuid.MustParse("00000000-0000-0000-0000-000000000003")
	require.NoError(t, s.Close())

	_, _, err := s.Get("boolean", id)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Put("boolean", id, "x"), ErrStoreClosed)
	_, err = s.Len()
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Close(), ErrStoreClosed)
}
