package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/tui-palace/internal/level"
)

// reloadDebounce drops repeated events for the same file; editors tend to
// write a file several times when saving.
const reloadDebounce = 100 * time.Millisecond

// ReloadMsg carries a freshly loaded atlas, or the error that stopped it
// from loading. Path is the file whose change triggered the reload.
type ReloadMsg struct {
	Path  string
	World *level.World
	Err   error
}

// Watcher reloads a world directory whenever one of its room files
// changes.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	events  chan string
	errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchWorld starts watching dir for room file changes.
func WatchWorld(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:     dir,
		watcher: fw,
		events:  make(chan string, 16),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Pending Next commands return nil.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Next waits for the next change and reloads the directory. The model
// issues it again after every ReloadMsg, so reloads reach Update one at a
// time, between frames.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case name := <-w.events:
			world, err := level.LoadDir(w.dir)
			return ReloadMsg{Path: name, World: world, Err: err}
		case err := <-w.errors:
			return ReloadMsg{Err: err}
		case <-w.closeCh:
			return nil
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !level.IsRoomFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
