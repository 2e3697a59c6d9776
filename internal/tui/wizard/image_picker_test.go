package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("img"), 0644))
	}
	return dir
}

func itemNames(p *ImagePicker) []string {
	var out []string
	for _, item := range p.Items() {
		out = append(out, item.Name())
	}
	return out
}

func TestImagePicker_ListsImagesAndDirs(t *testing.T) {
	dir := imageDir(t, "b.png", "A.JPG", "notes.md", "shots/one.webp", ".hidden.png")

	p := NewImagePicker(submit.ThumbnailSlot, dir)
	p.Init()
	defer p.Close()

	assert.Equal(t, dir, p.Dir())
	assert.Equal(t, []string{"..", "shots", "A.JPG", "b.png"}, itemNames(p))
	assert.True(t, p.Items()[1].IsDir())
}

func TestImagePicker_FallsBackToWorkingDir(t *testing.T) {
	p := NewImagePicker(submit.ThumbnailSlot, filepath.Join(t.TempDir(), "gone"))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, p.Dir())
}

func TestImagePicker_NavigateAndPick(t *testing.T) {
	dir := imageDir(t, "shots/one.png")

	p := NewImagePicker(submit.ScreenshotSlot(2), dir)
	p.Init()
	defer p.Close()

	// Move to "shots" and enter it.
	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	require.Equal(t, "shots", p.Selected().Name())
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, filepath.Join(dir, "shots"), p.Dir())
	assert.Equal(t, []string{"..", "one.png"}, itemNames(p))

	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, p.Finished())

	msg, ok := cmd().(ImagePickedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, submit.ScreenshotSlot(2), msg.Slot)
	assert.Equal(t, "one.png", msg.Image.Name())

	// A finished picker ignores further input.
	assert.Nil(t, p.Update(tea.KeyPressMsg{Code: tea.KeyUp}))
}

func TestImagePicker_Backspace(t *testing.T) {
	dir := imageDir(t, "shots/one.png")

	p := NewImagePicker(submit.ThumbnailSlot, filepath.Join(dir, "shots"))
	p.Init()
	defer p.Close()

	p.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, dir, p.Dir())
}

func TestImagePicker_EscCancels(t *testing.T) {
	p := NewImagePicker(submit.ThumbnailSlot, imageDir(t, "a.png"))
	p.Init()

	cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd().(ImagePickedMsg)
	assert.True(t, errors.Is(msg.Err, submit.ErrPickCanceled))
	assert.Equal(t, submit.ThumbnailSlot, msg.Slot)
}

func TestImagePicker_RefreshOnNewFile(t *testing.T) {
	dir := imageDir(t, "a.png")

	p := NewImagePicker(submit.ThumbnailSlot, dir)
	wait := p.Init()
	require.NotNil(t, wait)
	defer p.Close()
	assert.Equal(t, []string{"..", "a.png"}, itemNames(p))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("x"), 0644))

	msg, ok := runWithTimeout(t, wait, 3*time.Second)
	require.True(t, ok, "expected a change notification")
	next := p.Update(msg)
	assert.NotNil(t, next, "picker keeps waiting for changes")
	assert.Equal(t, []string{"..", "a.png", "b.png"}, itemNames(p))

	// Messages for another directory are ignored.
	assert.Nil(t, p.Update(DirChangedMsg{Dir: "/elsewhere"}))
}

func TestImagePicker_View(t *testing.T) {
	p := NewImagePicker(submit.ScreenshotSlot(0), imageDir(t, "shots/x.png"))
	p.Init()
	defer p.Close()

	out := ansi.Strip(p.View())
	assert.Contains(t, out, "Choose screenshot 1")
	assert.Contains(t, out, "▸ 📁 ..")
	assert.Contains(t, out, "No images in this directory")
	assert.Contains(t, out, "esc cancel")
}
