package placesapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(path, []byte("  abc123\n"), 0o600))

	key, err := LoadKey(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestLoadKeyFailsOnEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

	_, err := LoadKey(path)
	require.ErrorIs(t, err, ErrEmptyKey)
}

func TestLoadKeyFailsOnMissingFile(t *testing.T) {
	_, err := LoadKey(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCachedParsesDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.json")
	require.NoError(t, writeDebugFile(path, []byte(twoPlaces)))

	places, err := LoadCached(path)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Lucky Star", places[1].Title())
	require.NotNil(t, places[1].Rating)
	assert.Equal(t, 1.0, *places[1].Rating)
}
