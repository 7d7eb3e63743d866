// palace is a terminal platformer: walk, climb and jump through a palace of
// rooms, riding springs and ropes while the guards take their toll.
//
// Usage:
//
//	palace play              - Play in the terminal
//	palace rooms             - Browse or list the rooms of the world
//	palace atlas import <d>  - Import a directory of room files into the atlas
//	palace atlas list        - List the rooms stored in the atlas
//	palace serve             - Start SSH server for remote play
//	palace sim               - Run scripted input headless and print events
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Gameplay config YAML
//	--difficulty <name>  - easy, normal or hard
//	--world <dir>        - Load rooms from a directory of YAML/TMX files
//	--db <path>          - Load rooms from a SQLite atlas
//	--verbose            - Debug logging
//	--log <path>         - Log file (play logs nowhere by default)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagWorld      string
	flagDBPath     string
	flagVerbose    bool
	flagLogPath    string
	flagStartX     int
	flagStartY     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "palace",
	Short: "Palace - a tile platformer in your terminal",
	Long: `Palace is a terminal platformer. Rooms are tile maps joined edge to
edge; walk off one side and you arrive in the next room.

Available commands:
  play     - Play in the terminal
  rooms    - Browse the rooms of the world
  atlas    - Import and list rooms in a SQLite atlas
  serve    - Start SSH server for remote play
  sim      - Run scripted input headless

Examples:
  palace play
  palace play --world ./rooms
  palace rooms --plain
  palace atlas import ./rooms --db ~/.palace/atlas.db
  palace serve --ssh :2222
  palace sim --script "right:40,jump:1,idle:60"`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagWorld, "world", "", "Directory of room files (default: built-in world)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite atlas to load rooms from")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().IntVar(&flagStartX, "start-x", 8, "Start room x")
	rootCmd.PersistentFlags().IntVar(&flagStartY, "start-y", 8, "Start room y")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(atlasCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
