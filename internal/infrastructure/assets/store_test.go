package assets

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/pkg/errors"
)

func newTestStore() (*Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	logger, _ := zap.NewDevelopment()
	cfg := &config.AssetsConfig{
		UploadDir:    "/data/uploads",
		BaseURL:      "/uploads",
		MaxImageSize: 1024,
	}
	return NewStore(fs, cfg, logger).(*Store), fs
}

func TestStore_SaveImage(t *testing.T) {
	store, fs := newTestStore()
	ctx := context.Background()

	publicPath, err := store.SaveImage(ctx, "venues", "barby", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/img/venues/barby/barby.png", publicPath)

	data, err := afero.ReadFile(fs, "/data/uploads/img/venues/barby/barby.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestStore_SaveImageRejectsOversized(t *testing.T) {
	store, _ := newTestStore()

	big := make([]byte, 2048)
	_, err := store.SaveImage(context.Background(), "venues", "barby", big)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))

	_, err = store.SaveImage(context.Background(), "venues", "barby", nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
}

func TestStore_RenameFolder(t *testing.T) {
	store, fs := newTestStore()
	ctx := context.Background()

	_, err := store.SaveImage(ctx, "events", "jazz-night-2026-06-01-20-00", []byte("img"))
	require.NoError(t, err)

	newPath, err := store.RenameFolder(ctx, "events",
		"jazz-night-2026-06-01-20-00", "jazz-night-2026-06-02-20-00")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/img/events/jazz-night-2026-06-02-20-00/jazz-night-2026-06-02-20-00.png", newPath)

	exists, err := afero.Exists(fs, "/data/uploads/img/events/jazz-night-2026-06-02-20-00/jazz-night-2026-06-02-20-00.png")
	require.NoError(t, err)
	assert.True(t, exists)

	gone, err := afero.DirExists(fs, "/data/uploads/img/events/jazz-night-2026-06-01-20-00")
	require.NoError(t, err)
	assert.False(t, gone)
}

func TestStore_RenameFolderWithoutCustomImage(t *testing.T) {
	store, _ := newTestStore()

	// Сущность без своей папки остаётся на изображении по умолчанию
	newPath, err := store.RenameFolder(context.Background(), "venues", "old-slug", "new-slug")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/img/venues/default.png", newPath)
}

func TestStore_DeleteFolder(t *testing.T) {
	store, fs := newTestStore()
	ctx := context.Background()

	_, err := store.SaveImage(ctx, "venues", "barby", []byte("img"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteFolder(ctx, "venues", "barby"))

	exists, err := afero.DirExists(fs, "/data/uploads/img/venues/barby")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_DefaultPath(t *testing.T) {
	store, _ := newTestStore()
	assert.Equal(t, "/uploads/img/events/default.png", store.DefaultPath("events"))
}
