package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/game"
)

var (
	flagScript string
	flagQuiet  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run scripted input headless and print events",
	Long: `Runs the game without a terminal, feeding it a script of held keys,
and prints what happens: landings, jumps, damage and room changes.

A script is a comma separated list of <keys>:<frames>. Keys are left,
right, up, down, jump and idle; join keys held together with '+'.

Examples:
  palace sim --script "right:40,jump:1,idle:60"
  palace sim --script "left+jump:1,left:30" --fps 120
  palace sim --world ./rooms --start-x 0 --start-y 0 --script "down:64"`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "idle:60", "Input script")
	simCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the final state")
}

// simStep holds keys down for a number of frames.
type simStep struct {
	Actions []core.Action
	Frames  int
}

var simKeys = map[string]core.Action{
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"up":    core.ActionUp,
	"down":  core.ActionDown,
	"jump":  core.ActionJump,
	"idle":  core.ActionNone,
}

// parseScript reads "right+jump:10,idle:5" style scripts.
func parseScript(script string) ([]simStep, error) {
	var steps []simStep
	for _, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: expected <keys>:<frames>", part)
		}
		frames, err := strconv.Atoi(count)
		if err != nil || frames <= 0 {
			return nil, fmt.Errorf("step %q: frames must be a positive number", part)
		}

		step := simStep{Frames: frames}
		for _, k := range strings.Split(keys, "+") {
			a, ok := simKeys[strings.ToLower(strings.TrimSpace(k))]
			if !ok {
				return nil, fmt.Errorf("step %q: unknown key %q", part, k)
			}
			if a != core.ActionNone {
				step.Actions = append(step.Actions, a)
			}
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, errors.New("empty script")
	}
	return steps, nil
}

func runSim(_ *cobra.Command, _ []string) {
	steps, err := parseScript(flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
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
	logger, closeLog, err := newLogger("palace-sim", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	def := core.DefaultConfig()
	g, err := game.New(game.Options{
		Config:  cfg,
		Runtime: runtimeConfig(def.ScreenW, def.ScreenH),
		World:   world,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	healthEvery := max(int(math.Round(cfg.HealthTick().Seconds()*float64(flagFPS))), 1)
	out := io.Writer(os.Stdout)
	if flagQuiet {
		out = io.Discard
	}
	simulate(out, g, steps, flagFPS, healthEvery)
	printFinal(os.Stdout, g)
}

// simulate runs the script, calling the health tick every healthEvery
// frames, and prints one line per frame that had something to report.
func simulate(w io.Writer, g *game.Game, steps []simStep, fps, healthEvery int) int {
	dt := 1 / float64(fps)
	frame := 0
	for _, step := range steps {
		for range step.Frames {
			frame++
			res := g.Advance(core.NewInputFrame(step.Actions...), dt)

			var notes []string
			if res.Events != 0 {
				notes = append(notes, res.Events.String())
			}
			for _, c := range res.Crossings {
				notes = append(notes, fmt.Sprintf("crossed %s%+d", c.Axis, c.Dir))
			}
			if res.RoomChanged {
				st := g.State()
				notes = append(notes, fmt.Sprintf("entered %d:%d %q", st.RoomX, st.RoomY, st.RoomName))
			}
			if frame%healthEvery == 0 {
				if ev := g.Tick(); ev != 0 {
					notes = append(notes, "tick "+ev.String())
				}
			}
			if len(notes) > 0 {
				p := g.Player()
				fmt.Fprintf(w, "%5d  (%7.2f, %7.2f)  %s\n", frame, p.X, p.Y, strings.Join(notes, "; "))
			}
		}
	}
	return frame
}

func printFinal(w io.Writer, g *game.Game) {
	st := g.State()
	p := g.Player()
	fmt.Fprintf(w, "final: room %d:%d %q at (%.2f, %.2f) health %d",
		st.RoomX, st.RoomY, st.RoomName, p.X, p.Y, st.Health)
	if st.GameOver {
		fmt.Fprint(w, " (dead)")
	}
	fmt.Fprintln(w)
}
