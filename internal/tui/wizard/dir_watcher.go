package wizard

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 100 * time.Millisecond

// DirWatcher reports changes to the entries of one directory. Bursts of
// events collapse into a single notification after debounceInterval.
type DirWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	changes chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

// WatchDir starts watching dir (not recursively).
func WatchDir(dir string) (*DirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	dw := &DirWatcher{
		watcher: w,
		dir:     dir,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go dw.eventLoop()
	return dw, nil
}

// Dir returns the watched directory.
func (dw *DirWatcher) Dir() string { return dw.dir }

// Changes delivers one value per settled burst of changes. It is closed
// when the watcher stops.
func (dw *DirWatcher) Changes() <-chan struct{} { return dw.changes }

// Stop shuts down the watcher and waits for its event loop to exit.
func (dw *DirWatcher) Stop() error {
	close(dw.done)
	<-dw.stopped
	return dw.watcher.Close()
}

func (dw *DirWatcher) eventLoop() {
	defer close(dw.stopped)
	defer close(dw.changes)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-dw.done:
			return

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceInterval)
			} else {
				timer.Reset(debounceInterval)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case dw.changes <- struct{}{}:
			default:
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("DirWatcher error on %s: %v", dw.dir, err)
		}
	}
}

// DirChangedMsg is sent when the watched directory's entries change.
type DirChangedMsg struct {
	Dir string
}

// WaitForDirChange blocks until the next change and reports it as a message.
// It returns nil once the watcher has stopped.
func WaitForDirChange(dw *DirWatcher) tea.Cmd {
	if dw == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-dw.changes; !ok {
			return nil
		}
		return DirChangedMsg{Dir: dw.dir}
	}
}
