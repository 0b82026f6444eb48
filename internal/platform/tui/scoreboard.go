package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-muncher/internal/core"
	"github.com/vovakirdan/pixel-muncher/internal/registry"
	"github.com/vovakirdan/pixel-muncher/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Below this the maze list collapses to one line
	sidebarWidth       = 24  // Width of maze list sidebar
	maxScores          = 100 // Max scores to load per maze
)

// titlePrefix is dropped from maze titles where space is tight.
const titlePrefix = "Pixel Muncher: "

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevMaze key.Binding
	NextMaze key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMaze, k.NextMaze, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PrevMaze, k.NextMaze}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PrevMaze: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev maze"),
		),
		NextMaze: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next maze"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores of one maze at a time.
type ScoreboardModel struct {
	mazes     []registry.GameInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	painter   *Painter
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered maze.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		mazes:   registry.List(),
		store:   store,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		painter: NewPainter(nil),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.selectMaze(0)
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable sizes the score table to the current window.
func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	dateW := core.Clamp(avail-22, 12, 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-10, 3, maxScores)),
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

// selectMaze loads scores and stats for the maze at index i.
func (m *ScoreboardModel) selectMaze(i int) {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if len(m.mazes) > 0 {
		m.cursor = (i%len(m.mazes) + len(m.mazes)) % len(m.mazes)
		if m.store != nil {
			id := m.mazes[m.cursor].ID
			m.scores, m.loadErr = m.store.TopScores(id, maxScores)
			if m.loadErr == nil {
				m.stats, m.loadErr = m.store.GetGameStats(id)
			}
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMaze):
			m.selectMaze(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMaze):
			m.selectMaze(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.selectMaze(m.cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "HIGH SCORES"
	if len(m.mazes) > 0 {
		title += " - " + shortTitle(m.mazes[m.cursor].Title)
	}
	b.WriteString(centerText(m.painter.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(title), m.width))
	b.WriteString("\n\n")

	box := m.painter.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	scores := box.Render(m.summary() + "\n\n" + m.scoresView())

	if m.wide() {
		list := box.Width(sidebarWidth).Render(m.mazeList())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", scores))
	} else {
		b.WriteString(centerText(m.mazeSwitcher(), m.width))
		b.WriteString("\n\n")
		b.WriteString(scores)
	}

	b.WriteString("\n")
	b.WriteString(m.painter.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// mazeList renders the sidebar used on wide terminals.
func (m ScoreboardModel) mazeList() string {
	var b strings.Builder
	b.WriteString("Mazes\n")
	b.WriteString(strings.Repeat("─", sidebarWidth-4))
	active := m.painter.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, g := range m.mazes {
		name := shortTitle(g.Title)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(active.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
	}
	return b.String()
}

// mazeSwitcher renders the one-line maze selector used on narrow terminals.
func (m ScoreboardModel) mazeSwitcher() string {
	if len(m.mazes) == 0 {
		return ""
	}
	return fmt.Sprintf("< %s >  (%d/%d)", shortTitle(m.mazes[m.cursor].Title), m.cursor+1, len(m.mazes))
}

// summary renders the aggregate line above the table.
func (m ScoreboardModel) summary() string {
	dim := m.painter.NewStyle().Foreground(lipgloss.Color("241"))
	switch {
	case m.store == nil:
		return dim.Render("Scores are not being recorded.")
	case m.loadErr != nil:
		return dim.Render("Could not load scores.")
	case m.stats == nil || m.stats.GamesCount == 0:
		return dim.Render("Not played yet.")
	}
	return fmt.Sprintf("Played %d  ·  Best %d  ·  Avg %.0f  ·  Last %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02"))
}

func (m ScoreboardModel) scoresView() string {
	if len(m.scores) == 0 {
		return m.painter.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No scores recorded yet.\nClear a maze to set a high score!")
	}
	return m.table.View()
}

func shortTitle(title string) string {
	return strings.TrimPrefix(title, titlePrefix)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the score browser on its own until the user leaves it.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
