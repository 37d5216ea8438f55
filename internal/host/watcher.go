package host

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 250 * time.Millisecond

// PayloadWatcher watches the payload file and invokes onChange after
// writes settle. Rapid editor save bursts collapse into one callback.
type PayloadWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	log     *zap.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewPayloadWatcher watches the directory containing path so that
// rename-over-save editors keep working.
func NewPayloadWatcher(path string, log *zap.Logger) (*PayloadWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &PayloadWatcher{
		path:    path,
		watcher: w,
		log:     log,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start runs the watch loop until Stop. onChange fires on the loop
// goroutine; callers hand it something safe to call from there (the
// tui posts a message into its own update loop).
func (pw *PayloadWatcher) Start(onChange func()) {
	go func() {
		defer close(pw.doneCh)
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case ev, ok := <-pw.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(pw.path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				pw.log.Debug("payload event", zap.String("op", ev.Op.String()))
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				onChange()
			case err, ok := <-pw.watcher.Errors:
				if !ok {
					return
				}
				pw.log.Warn("watch error", zap.Error(err))
			case <-pw.stopCh:
				return
			}
		}
	}()
}

// Stop ends the watch loop and releases the inotify handle.
func (pw *PayloadWatcher) Stop() {
	close(pw.stopCh)
	pw.watcher.Close()
	<-pw.doneCh
}
