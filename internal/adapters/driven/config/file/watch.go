package file

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events produced by an editor save
// or an atomic rename.
const watchDebounce = 200 * time.Millisecond

// Watch reloads the configuration whenever the file changes on disk and
// signals on the returned channel if the loaded values differ from the
// previous ones. Parse errors keep the previous values.
// The channel is closed when ctx is done.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: atomic saves replace the file's inode.
	if err := w.Add(filepath.Dir(s.filePath)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	ch := make(chan struct{})

	go func() {
		defer close(ch)
		defer w.Close()

		var timer *time.Timer
		var timerC <-chan time.Time

		stopTimer := func() {
			if timer != nil {
				timer.Stop()
				timer = nil
				timerC = nil
			}
		}
		defer stopTimer()

		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != s.filePath {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
					timerC = timer.C
				} else {
					timer.Reset(watchDebounce)
				}
			case <-timerC:
				stopTimer()
				if !s.reload() {
					continue
				}
				select {
				case ch <- struct{}{}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return ch, nil
}

// reload re-reads the file and reports whether anything changed.
func (s *ConfigStore) reload() bool {
	loaded, err := s.read()
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reflect.DeepEqual(loaded, s.data) {
		return false
	}
	s.data = loaded
	return true
}
