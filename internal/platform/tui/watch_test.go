package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const watchedRoom = `name: Watched
x: 0
y: 0
map: |
  ....
  ####
`

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.yaml")
	if err := os.WriteFile(path, []byte(watchedRoom), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w, err := WatchWorld(dir)
	if err != nil {
		t.Fatalf("WatchWorld() error = %v", err)
	}
	defer w.Close()

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- w.Next()() }()

	if err := os.WriteFile(path, []byte(watchedRoom), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case msg := <-msgs:
		rm, ok := msg.(ReloadMsg)
		if !ok {
			t.Fatalf("Next() = %T, expected ReloadMsg", msg)
		}
		if rm.Err != nil {
			t.Fatalf("ReloadMsg.Err = %v", rm.Err)
		}
		if rm.World.Len() != 1 || !rm.World.Has(0, 0) {
			t.Errorf("reloaded world has %d rooms, expected room 0:0", rm.World.Len())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing a room file")
	}
}

func TestWatcherCloseReleasesNext(t *testing.T) {
	w, err := WatchWorld(t.TempDir())
	if err != nil {
		t.Fatalf("WatchWorld() error = %v", err)
	}

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- w.Next()() }()

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	select {
	case msg := <-msgs:
		if msg != nil {
			t.Errorf("Next() after Close = %v, expected nil", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Next() still blocked after Close")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWatchWorldMissingDir(t *testing.T) {
	if _, err := WatchWorld(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("WatchWorld() error = nil, expected an error for a missing directory")
	}
}
