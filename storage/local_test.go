package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"foodgram/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/media/")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "recipes/images/a.png", []byte("png"), "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "recipes", "images", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.Equal(t, "/media/recipes/images/a.png", store.URL("recipes/images/a.png"))
	assert.Equal(t, "", store.URL(""))

	require.NoError(t, store.Delete(ctx, "recipes/images/a.png"))
	require.NoError(t, store.Delete(ctx, "recipes/images/a.png"))
	_, err = os.Stat(filepath.Join(dir, "recipes", "images", "a.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreKeepsKeysInsideDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/media")
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "../../escape.png", []byte("x"), "image/png"))
	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)

	assert.Error(t, store.Save(context.Background(), "", []byte("x"), "image/png"))
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), config.MediaConfig{Backend: "ftp"})
	assert.Error(t, err)
}
