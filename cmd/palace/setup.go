package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-palace/internal/config"
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/level"
	"github.com/vovakirdan/tui-palace/internal/storage"
)

// loadConfig reads the gameplay config named by the global flags.
func loadConfig() (config.PalaceConfig, error) {
	return config.LoadPalaceWithPreset(flagConfig, config.DifficultyPreset(flagDifficulty))
}

// loadWorld picks the room source: a directory, a SQLite atlas, or the
// built-in world.
func loadWorld() (*level.World, error) {
	switch {
	case flagWorld != "" && flagDBPath != "":
		return nil, errors.New("--world and --db are mutually exclusive")
	case flagWorld != "":
		return level.LoadDir(flagWorld)
	case flagDBPath != "":
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.World()
	default:
		return level.Default()
	}
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		StartRoomX: flagStartX,
		StartRoomY: flagStartY,
	}
}

// newLogger writes to --log when given and to fallback otherwise. The
// returned closer must be called when done.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
