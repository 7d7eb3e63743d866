package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-palace/internal/level"
	"github.com/vovakirdan/tui-palace/internal/storage"
)

const defaultAtlasPath = "~/.palace/atlas.db"

var atlasCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Manage the SQLite room atlas",
	Long: `The atlas keeps rooms in a single SQLite file, keyed by room
coordinates. Import a directory of room files once, then play from it with
'palace play --db <path>'.

The atlas commands use ` + defaultAtlasPath + ` unless --db is given.`,
}

var atlasImportCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import a directory of room files",
	Long: `Loads every .yaml, .yml and .tmx file under dir and stores the rooms
in the atlas. A room already stored at the same coordinates is replaced.

Examples:
  palace atlas import ./rooms
  palace atlas import ./rooms --db ./atlas.db`,
	Args: cobra.ExactArgs(1),
	Run:  runAtlasImport,
}

var atlasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rooms stored in the atlas",
	Args:  cobra.NoArgs,
	Run:   runAtlasList,
}

func init() {
	atlasCmd.AddCommand(atlasImportCmd)
	atlasCmd.AddCommand(atlasListCmd)
}

func atlasPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return defaultAtlasPath
}

func runAtlasImport(_ *cobra.Command, args []string) {
	world, err := level.LoadDir(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rooms: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(atlasPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening atlas: %v\n", err)
		os.Exit(1)
	}
	n, err := store.SaveWorld(world)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing rooms: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d rooms into %s\n", n, atlasPath())
}

func runAtlasList(_ *cobra.Command, _ []string) {
	store, err := storage.Open(atlasPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening atlas: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Rooms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing rooms: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("The atlas is empty. Run 'palace atlas import <dir>' to fill it.")
		return
	}

	fmt.Printf("Atlas %s\n\n", atlasPath())
	fmt.Printf("  %-8s  %-7s  %-20s  %s\n", "Room", "Size", "Name", "Updated")
	fmt.Printf("  %-8s  %-7s  %-20s  %s\n", "----", "----", "----", "-------")
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = level.DefaultName
		}
		fmt.Printf("  %-8s  %-7s  %-20s  %s\n",
			level.Coord{X: e.X, Y: e.Y},
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			name,
			e.UpdatedAt.Format("Jan 02 15:04"),
		)
	}
}
