package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dashcourse/internal/levels"
	"github.com/vovakirdan/dashcourse/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the level sidebar
	sidebarWidth       = 22
	maxAudits          = 100
)

// HistoryKeyMap defines the key bindings of the audit history board.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextLevel, k.PrevLevel}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows stored audit results per level.
type HistoryModel struct {
	levels      []levels.LevelConfig
	cursor      int
	store       *storage.Store
	audits      []storage.AuditRecord
	stats       *storage.AuditStats
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	showSidebar bool
	quitting    bool
}

// NewHistoryModel creates a history board starting at levelID.
func NewHistoryModel(store *storage.Store, lvls []levels.LevelConfig, levelID, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		levels:      lvls,
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, l := range lvls {
		if l.ID == levelID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Mode", Width: 8},
		{Title: "Tier", Width: 5},
		{Title: "Cleared", Width: 9},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// load reads the history of the selected level.
func (m *HistoryModel) load() {
	m.audits, m.stats = nil, nil
	if m.store != nil && len(m.levels) > 0 {
		id := m.levels[m.cursor].ID
		if audits, err := m.store.RecentAudits(id, maxAudits); err == nil {
			m.audits = audits
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.audits))
	for i, a := range m.audits {
		seed := "clock"
		if a.Seed != 0 {
			seed = fmt.Sprintf("%d", a.Seed)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", a.ID),
			a.Mode,
			fmt.Sprintf("%d", a.Difficulty),
			fmt.Sprintf("%d/%d", a.Cleared, a.Obstacles),
			seed,
			a.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history board.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history board.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + len(m.levels) - 1) % len(m.levels)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the history board.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "AUDIT HISTORY"
	if len(m.levels) > 0 {
		l := m.levels[m.cursor]
		title = fmt.Sprintf("AUDIT HISTORY - %d. %s", l.ID, l.Name)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(m.summary()))
	b.WriteString("\n\n")

	content := boxStyle.Render(m.tableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) summary() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "no runs"
	}
	return fmt.Sprintf("%d runs, %d passed, %.0f%% obstacles cleared on average",
		m.stats.Runs, m.stats.Passed, m.stats.AvgRate*100)
}

func (m HistoryModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Levels\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, l := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := fmt.Sprintf("%2d %s", l.ID, l.Name)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sb.WriteString(style.Render(cursor + name))
		sb.WriteString("\n")
	}

	return boxStyle.Width(sidebarWidth).Render(sb.String())
}

func (m HistoryModel) tableContent() string {
	if len(m.audits) == 0 {
		return emptyStyle.Render("No audits recorded yet.\nRun 'dashcourse audit' or autoplay a level.")
	}
	return m.table.View()
}

// Selected returns the ID of the level the board is showing.
func (m HistoryModel) Selected() int {
	if len(m.levels) == 0 {
		return 0
	}
	return m.levels[m.cursor].ID
}

// RunHistory runs the history board.
func RunHistory(store *storage.Store, lvls []levels.LevelConfig, levelID, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(store, lvls, levelID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
