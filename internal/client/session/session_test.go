package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	sess := &Session{
		User:  models.User{UserID: 4, Username: "mehmet", RoleName: models.RoleAcademic},
		Token: "tok",
	}
	require.NoError(t, store.Save(sess))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Clear())
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}
