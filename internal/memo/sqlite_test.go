package memo

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	id := uuid.MustParse("00000000-0000-0000-0000-000000000010")

	_, ok, err := s.Get("boolean", id)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("boolean", id, "false"))

	v, ok, err := s.Get("boolean", id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", v)

	// Upsert replaces the value in place.
	require.NoError(t, s.Put("boolean", id, "true"))
	v, ok, err = s.Get("boolean", id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", v)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	id := uuid.MustParse("00000000-0000-0000-0000-000000000011")

	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put("printer", id, "(x&y)"))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("printer", id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "(x&y)", v)
}

func TestSQLiteStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "memo")
	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, filepath.Join(dir, dbFileName))
}

func TestSQLiteStoreClosed(t *testing.T) {
	s, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	id := uuid.MustParse("00000000-0000-0000-0000-000000000012")
	_, _, err = s.Get("boolean", id)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Put("boolean", id, "x"), ErrStoreClosed)
	_, err = s.Len()
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Close(), ErrStoreClosed)
}
