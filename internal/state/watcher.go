package state

import (
	"errors"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type ConfigChangedMsg struct {
	Path string
}

type ConfigWatcherErrMsg struct {
	Err error
}

// ConfigWatcher reports writes to the config file. It watches the parent
// directory because editors often replace the file rather than write it.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	done     chan struct{}
	once     sync.Once
	onChange func(string)
	onClose  func()
}

func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	if path == "" {
		return nil, errors.New("config path cannot be empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &ConfigWatcher{
		watcher: w,
		path:    filepath.Clean(abs),
		done:    make(chan struct{}),
	}

	if err := w.Add(filepath.Dir(watcher.path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return watcher, nil
}

// Start returns a command that blocks until the next relevant event. The
// receiver of ConfigChangedMsg calls Start again to keep listening.
func (w *ConfigWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				if !w.isRelevant(event) {
					continue
				}

				if w.onChange != nil {
					w.onChange(w.path)
				}

				return ConfigChangedMsg{Path: w.path}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return ConfigWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *ConfigWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
		if w.onClose != nil {
			w.onClose()
		}
	})

	return closeErr
}

// OnChange registers a callback invoked with the config path before the
// change message is delivered.
func (w *ConfigWatcher) OnChange(fn func(string)) {
	if w == nil {
		return
	}
	w.onChange = fn
}

// OnClose registers a callback invoked once when the watcher shuts down.
func (w *ConfigWatcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.onClose = fn
}

// Path returns the watched config file.
func (w *ConfigWatcher) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

func (w *ConfigWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}
