package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-palace/internal/level"
	"github.com/vovakirdan/tui-palace/internal/platform/tui"
)

var flagPlain bool

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Browse the rooms of the world",
	Long: `Shows the rooms of the world. In a terminal this opens a browser with
a preview of each room; press enter to start playing from the selected room.
With --plain, or when stdout is not a terminal, prints a list instead.

Examples:
  palace rooms
  palace rooms --world ./rooms --plain`,
	Args: cobra.NoArgs,
	Run:  runRooms,
}

func init() {
	roomsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list")
}

func runRooms(_ *cobra.Command, _ []string) {
	world, err := loadWorld()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printRooms(os.Stdout, world)
		return
	}

	width, height := terminalSize()
	picked, ok, err := tui.RunAtlas(world, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := newLogger("palace", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig(width, height)
	rt.StartRoomX, rt.StartRoomY = picked.X, picked.Y
	runErr := playWorld(world, cfg, rt, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// printRooms writes one line per room, north to south.
func printRooms(w io.Writer, world *level.World) {
	rooms := world.Rooms()
	if len(rooms) == 0 {
		fmt.Fprintln(w, "No rooms.")
		return
	}

	maxCoordLen := 4 // "Room" header
	for _, r := range rooms {
		if n := len(r.Coord().String()); n > maxCoordLen {
			maxCoordLen = n
		}
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxCoordLen, "Room", "Size", "Name")
	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxCoordLen, "----", "----", "----")
	for _, r := range rooms {
		size := "?"
		if len(r.Tiles) > 0 {
			size = fmt.Sprintf("%dx%d", len(r.Tiles[0]), len(r.Tiles))
		}
		fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxCoordLen, r.Coord(), size, r.Title())
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d rooms. Run 'palace play' to start.\n", len(rooms))
}
