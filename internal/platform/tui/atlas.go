package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-palace/internal/core"
	"github.com/vovakirdan/tui-palace/internal/game"
	"github.com/vovakirdan/tui-palace/internal/level"
)

// Atlas browser layout constants
const (
	minWidthForPreview = 90 // Minimum width to show the room preview
	atlasChromeRows    = 8  // Title, table header, borders and help
)

// AtlasKeyMap defines the key bindings for the atlas browser.
type AtlasKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AtlasKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AtlasKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultAtlasKeyMap returns default key bindings.
func DefaultAtlasKeyMap() AtlasKeyMap {
	return AtlasKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play from room"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AtlasModel is the Bubble Tea model for browsing the rooms of a world.
type AtlasModel struct {
	rooms       []level.RoomData
	table       table.Model
	help        help.Model
	keys        AtlasKeyMap
	width       int
	height      int
	selected    bool
	quitting    bool
	showPreview bool
}

// NewAtlasModel creates a browser over every room in w.
func NewAtlasModel(w *level.World, width, height int) AtlasModel {
	h := help.New()
	h.ShowAll = false

	m := AtlasModel{
		rooms:       w.Rooms(),
		keys:        DefaultAtlasKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *AtlasModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Room", Width: 8},
		{Title: "Name", Width: 24},
		{Title: "Size", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-atlasChromeRows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the room list.
func (m *AtlasModel) updateTableRows() {
	rows := make([]table.Row, len(m.rooms))
	for i, r := range m.rooms {
		size := "?"
		if len(r.Tiles) > 0 {
			size = fmt.Sprintf("%dx%d", len(r.Tiles[0]), len(r.Tiles))
		}
		rows[i] = table.Row{r.Coord().String(), r.Title(), size}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the atlas model.
func (m AtlasModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the atlas browser.
func (m AtlasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.rooms) > 0 {
				m.selected = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Current returns the room under the cursor.
func (m AtlasModel) Current() (level.RoomData, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rooms) {
		return level.RoomData{}, false
	}
	return m.rooms[i], true
}

// Selected returns the room picked with enter, if any.
func (m AtlasModel) Selected() (level.RoomData, bool) {
	if !m.selected {
		return level.RoomData{}, false
	}
	return m.Current()
}

// View renders the atlas browser.
func (m AtlasModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("ATLAS - %d rooms", len(m.rooms)), m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := boxStyle.Render(m.renderTableContent())
	if m.showPreview {
		if preview := m.renderPreview(); preview != "" {
			tableRendered = lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", boxStyle.Render(preview))
		}
	}
	b.WriteString(tableRendered)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m AtlasModel) renderTableContent() string {
	if len(m.rooms) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rooms in this atlas.\nImport some with 'palace atlas import'.")
	}
	return m.table.View()
}

// renderPreview draws the layout of the room under the cursor.
func (m AtlasModel) renderPreview() string {
	r, ok := m.Current()
	if !ok {
		return ""
	}
	grid, err := r.Grid()
	if err != nil {
		return err.Error()
	}
	screen := core.NewScreen(grid.Width()*game.CellsPerTile, grid.Height())
	game.DrawTiles(screen, grid, 0, 0)
	return RenderScreen(screen)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunAtlas runs the atlas browser. It returns the room picked with enter,
// or false when the user quit without picking one.
func RunAtlas(w *level.World, width, height int) (level.RoomData, bool, error) {
	p := tea.NewProgram(
		NewAtlasModel(w, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return level.RoomData{}, false, err
	}

	m, ok := finalModel.(AtlasModel)
	if !ok {
		return level.RoomData{}, false, nil
	}
	r, picked := m.Selected()
	return r, picked, nil
}
