package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/game"
)

// Terminals report presses and auto-repeat but never releases, so a
// movement key counts as held until holdWindow after its last press.
const holdWindow = 150 * time.Millisecond

// footerRows is the space below the room for the status and help lines.
const footerRows = 2

// DefaultHealthTick is the health cadence when Options leaves it unset.
const DefaultHealthTick = 125 * time.Millisecond

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a play model.
type Options struct {
	Game       *game.Game
	Runtime    core.RuntimeConfig
	HealthTick time.Duration
	Watcher    *Watcher // optional; delivers hot reloads
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	healthTick time.Duration
	keys       KeyMap
	help       help.Model
	watcher    *Watcher
	log        *log.Logger

	held    map[core.Action]time.Time
	pressed core.InputFrame // one-shot presses since the last frame
	now     func() time.Time

	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model around a running game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	healthTick := opts.HealthTick
	if healthTick <= 0 {
		healthTick = DefaultHealthTick
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       opts.Game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		config:     cfg,
		healthTick: healthTick,
		keys:       DefaultKeyMap(),
		help:       h,
		watcher:    opts.Watcher,
		log:        logger,
		held:       make(map[core.Action]time.Time),
		pressed:    core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init starts the frame and health tick loops and, when watching, the
// first reload wait.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate), healthTickCmd(m.healthTick)}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case HealthTickMsg:
		m.game.Tick()
		return m, healthTickCmd(m.healthTick)

	case ReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	switch {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case a == core.ActionNone:
	case held(a):
		m.held[a] = m.now()
		m.pressed.Set(a)
	default:
		m.pressed.Set(a)
	}
	return m, nil
}

// handleResize keeps the screen buffer the size of the terminal minus
// the footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	step := m.game.Advance(m.inputFrame(), 1/float64(m.config.TickRate))
	m.pressed.Clear()

	if step.RoomChanged {
		st := m.game.State()
		m.status = fmt.Sprintf("%s  %s", st.RoomName, m.game.RoomLabel())
	}

	return m, tickCmd(m.config.TickRate)
}

// inputFrame collects the actions held this frame and forgets keys whose
// hold window has run out.
func (m Model) inputFrame() core.InputFrame {
	frame := core.NewInputFrame()
	now := m.now()
	for a, at := range m.held {
		if now.Sub(at) > holdWindow {
			delete(m.held, a)
			continue
		}
		frame.Set(a)
	}
	for a, on := range m.pressed.Actions {
		if on {
			frame.Set(a)
		}
	}
	return frame
}

// handleReload swaps in a reloaded atlas. A bad file keeps the old atlas
// and shows the error instead.
func (m Model) handleReload(msg ReloadMsg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if m.watcher != nil {
		next = m.watcher.Next()
	}

	err := msg.Err
	if err == nil {
		err = m.game.Reload(msg.World)
	}
	if err != nil {
		m.log.Warn("reload failed", "path", msg.Path, "err", err)
		m.status = "reload failed: " + err.Error()
		return m, next
	}

	m.log.Info("reloaded", "path", msg.Path)
	m.status = "reloaded " + filepath.Base(msg.Path)
	return m, next
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".palace", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	st := m.game.State()
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("room_%d_%d_%s.txt", st.RoomX, st.RoomY, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Status returns the footer status line.
func (m Model) Status() string { return m.status }

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
