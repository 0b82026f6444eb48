package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-muncher/internal/core"
	"github.com/vovakirdan/pixel-muncher/internal/registry"
	"github.com/vovakirdan/pixel-muncher/internal/storage"
)

const menuBanner = "P I X E L   M U N C H E R"

// MenuItem is one maze offered by the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // 0 until the maze has a recorded session
}

// MenuModel picks a maze. It finishes with tea.Quit once the user chose
// a maze, asked for the scoreboard or left; the caller reads which.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	width   int
	height  int
	config  core.RuntimeConfig
	keys    MenuKeyMap
	painter *Painter
	help    help.Model

	quitting   bool
	selected   *MenuItem
	wantsBoard bool
}

// NewMenuModel lists every registered maze with its best score from store
// (which may be nil).
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		painter: NewPainter(nil),
		help:    help.New(),
	}
	m.help.Width = cfg.ScreenW

	for _, info := range registry.List() {
		it := MenuItem{GameID: info.ID, Title: info.Title}
		if store != nil {
			// A read error only hides the best score.
			it.Best, _ = store.HighScore(info.ID)
		}
		m.items = append(m.items, it)
	}
	return m
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionUp:
		m.moveCursor(-1)
	case MenuActionDown:
		m.moveCursor(1)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		it := m.items[m.cursor]
		m.selected = &it
		return m, tea.Quit
	case MenuActionScoreboard:
		m.wantsBoard = true
		return m, tea.Quit
	case MenuActionBack, MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *MenuModel) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = core.Clamp(m.cursor+delta, 0, len(m.items)-1)
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	banner := m.painter.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	active := m.painter.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := m.painter.NewStyle().Foreground(lipgloss.Color("241"))

	lines := []string{"", banner.Render(menuBanner), "", "Select a maze", ""}
	if len(m.items) == 0 {
		lines = append(lines, "No mazes registered.")
	}
	for i, it := range m.items {
		row := "  " + it.Title
		if it.Best > 0 {
			row += fmt.Sprintf("  (best %d)", it.Best)
		}
		if i == m.cursor {
			row = active.Render("> " + row[2:])
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", dim.Render(m.help.View(m.keys)))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, m.width))
		b.WriteByte('\n')
	}
	return b.String()
}

// Selected is the chosen maze, nil if none was chosen.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// IsQuitting reports whether the user left the menu.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.wantsBoard }

// Config is the runtime config with the latest terminal size applied.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads text to the middle of width, counting printable cells.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
