package wizard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func runWithTimeout(t *testing.T, cmd tea.Cmd, d time.Duration) (tea.Msg, bool) {
	t.Helper()
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d):
		return nil, false
	}
}

func TestDirWatcher_ReportsNewFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, err := WatchDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, w.Dir())

	cmd := WaitForDirChange(w)
	require.NotNil(t, cmd)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.png"), []byte("x"), 0644))

	msg, ok := runWithTimeout(t, cmd, 3*time.Second)
	require.True(t, ok, "expected a change notification")
	assert.Equal(t, DirChangedMsg{Dir: dir}, msg)

	require.NoError(t, w.Stop())
}

func TestDirWatcher_StopUnblocksWaiter(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := WatchDir(t.TempDir())
	require.NoError(t, err)

	cmd := WaitForDirChange(w)
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	require.NoError(t, w.Stop())
	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(3 * time.Second):
		t.Fatal("waiter did not return after Stop")
	}
}

func TestWatchDir_MissingDir(t *testing.T) {
	_, err := WatchDir(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.Nil(t, WaitForDirChange(nil))
}
