package token

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveAndLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "fyers_token.txt"))

	require.NoError(t, store.Save("tok1"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", loaded)
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "fyers_token.txt"))

	require.NoError(t, store.Save("old-token"))
	require.NoError(t, store.Save("new-token"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "new-token", loaded)
}

func TestStoreLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fyers_token.txt")
	require.NoError(t, os.WriteFile(path, []byte("tok1\n"), 0o600))

	loaded, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", loaded)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestStoreSavePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "fyers_token.txt")
	require.NoError(t, NewStore(path).Save("tok1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
