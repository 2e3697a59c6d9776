package submit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImagePath(t *testing.T) {
	assert.True(t, IsImagePath("shot.PNG"))
	assert.True(t, IsImagePath("/a/b/cover.jpeg"))
	assert.False(t, IsImagePath("notes.md"))
	assert.False(t, IsImagePath("png"))
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid image", func(t *testing.T) {
		path := filepath.Join(dir, "cover.png")
		require.NoError(t, os.WriteFile(path, []byte("png"), 0644))

		img, err := LoadImage(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(img.URI, "file://"))
		assert.Equal(t, "cover.png", img.Name())
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		_, err := LoadImage(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadImage(filepath.Join(dir, "gone.png"))
		assert.Error(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		path := filepath.Join(dir, "huge.jpg")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(MaxImageBytes+1))
		require.NoError(t, f.Close())

		_, err = LoadImage(path)
		assert.ErrorContains(t, err, "exceeds")
	})
}

func TestWizard_PickFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.webp")
	require.NoError(t, os.WriteFile(path, []byte("webp"), 0644))

	w := NewWizard()
	alert, err := w.Pick(context.Background(), FilePicker(path), ScreenshotSlot(1))
	require.NoError(t, err)
	assert.Nil(t, alert)
	assert.Equal(t, "shot.webp", w.Form().Screenshots[1].Name())

	alert, err = w.Pick(context.Background(), FilePicker(filepath.Join(t.TempDir(), "none.png")), ThumbnailSlot)
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, PickFailedAlert, *alert)
	assert.False(t, w.Form().Thumbnail.IsSet())
}
