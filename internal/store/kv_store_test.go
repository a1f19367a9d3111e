package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgg/internal/crypto"
	"walletgg/internal/domain"
	"walletgg/internal/store"
)

func TestFileKV_MissingFileIsEmpty(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())

	v, ok, err := kv.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFileKV_PutGetDelete(t *testing.T) {
	home := t.TempDir()
	var kv domain.KeyValueStore = store.NewFileKV(home)

	require.NoError(t, kv.Put(map[string]string{"token": "abc123", "username": "alice"}))

	// A second instance sees what the first wrote.
	reopened := store.NewFileKV(home)
	v, ok, err := reopened.Get("username")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	require.NoError(t, kv.Delete("token", "username", "never-set"))
	_, ok, err = reopened.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV_FileMode(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	require.NoError(t, kv.Put(map[string]string{"token": "abc"}))

	info, err := os.Stat(kv.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileKV_CreatesHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", ".walletgg")
	kv := store.NewFileKV(home)
	require.NoError(t, kv.Put(map[string]string{"k": "v"}))
	assert.FileExists(t, filepath.Join(home, "storage.json"))
}

func TestFileKV_DeleteAbsentKeyDoesNotCreateFile(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	require.NoError(t, kv.Delete("token"))
	assert.NoFileExists(t, kv.Path())
}

func TestFileKV_CorruptFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "storage.json"), []byte("{not json"), 0o600))

	_, _, err := store.NewFileKV(home).Get("token")
	assert.Error(t, err)
}

func TestSealedKV_RoundTripAndWrongPassphrase(t *testing.T) {
	home := t.TempDir()
	kv := store.NewSealedKV(home, "correct horse")
	require.NoError(t, kv.Put(map[string]string{"token": "abc123"}))

	raw, err := os.ReadFile(kv.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "abc123")

	v, ok, err := store.NewSealedKV(home, "correct horse").Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)

	_, _, err = store.NewSealedKV(home, "battery staple").Get("token")
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)
}

func TestMemoryKV(t *testing.T) {
	kv := store.NewMemoryKV(map[string]string{"token": "abc123"})

	v, ok, err := kv.Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)

	require.NoError(t, kv.Put(map[string]string{"username": "alice"}))
	require.NoError(t, kv.Delete("token"))
	assert.Equal(t, map[string]string{"username": "alice"}, kv.Snapshot())
}
