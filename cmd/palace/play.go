package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-palace/internal/config"
	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/game"
	"github.com/vovakirdan/tui-palace/internal/level"
	"github.com/vovakirdan/tui-palace/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the start room.

Controls:
  ←/→ or A/D    - Walk
  ↑/↓ or W/S    - Climb ladders and ropes
  Space/Enter   - Jump
  P/Esc         - Pause
  R             - Rise again (after dying)
  ?             - More keys
  Q/Ctrl+C      - Quit

With --world, room files are watched and reloaded while you play.

Examples:
  palace play
  palace play --difficulty easy
  palace play --world ./rooms --log palace.log -v
  palace play --db ~/.palace/atlas.db --start-x 9 --start-y 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", true, "Reload --world room files when they change")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	world, err := loadWorld()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns stdout, so logs only go to --log.
	logger, closeLog, err := newLogger("palace", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	runErr := playWorld(world, cfg, runtimeConfig(terminalSize()), logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return width, height
}

func playWorld(world *level.World, cfg config.PalaceConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	g, err := game.New(game.Options{
		Config:  cfg,
		Runtime: rt,
		World:   world,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	var watcher *tui.Watcher
	if flagWatch && flagWorld != "" {
		watcher, err = tui.WatchWorld(flagWorld)
		if err != nil {
			logger.Warn("not watching world", "dir", flagWorld, "err", err)
		} else {
			defer watcher.Close()
		}
	}

	return tui.Run(tui.Options{
		Game:       g,
		Runtime:    rt,
		HealthTick: cfg.HealthTick(),
		Watcher:    watcher,
		Logger:     logger,
	})
}
