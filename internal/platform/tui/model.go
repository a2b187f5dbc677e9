package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dashcourse/internal/core"
	"github.com/vovakirdan/dashcourse/internal/course"
	"github.com/vovakirdan/dashcourse/internal/levels"
	"github.com/vovakirdan/dashcourse/internal/registry"
	"github.com/vovakirdan/dashcourse/internal/storage"
)

// DefaultXScale is how many world units one screen column shows.
const DefaultXScale = 10.0

// chromeRows are the HUD and help lines drawn around the course screen.
const chromeRows = 2

// Model is the Bubble Tea model of the course previewer.
type Model struct {
	catalog *levels.Catalog
	store   *storage.Store // Optional, receives autoplay results
	logger  *log.Logger
	seed    int64
	config  core.ViewConfig
	screen  *core.Screen
	scene   scene
	keys    PreviewKeyMap
	help    help.Model

	level  levels.LevelConfig
	camera float64 // World x at the left edge of the screen

	report  course.Report
	frame   int // Index into report.Path while autoplaying
	playing bool
	status  string

	quitting bool
}

// NewModel enters levelID in the catalog and returns a previewer showing it.
// seed is only recorded with audit results.
func NewModel(catalog *levels.Catalog, store *storage.Store, cfg core.ViewConfig, levelID int, seed int64, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.Default()
	}

	lvl, err := catalog.Enter(levelID)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		catalog: catalog,
		store:   store,
		logger:  logger,
		seed:    seed,
		config:  cfg,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 0)),
		scene:   scene{arena: catalog.Arena(), xScale: DefaultXScale, windows: true},
		keys:    DefaultPreviewKeyMap(),
		help:    h,
		level:   lvl,
	}, nil
}

// Init starts the previewer idle.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.viewWidth() / 4

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.playing = false
		m.scroll(-step)

	case key.Matches(msg, m.keys.Right):
		m.playing = false
		m.scroll(step)

	case key.Matches(msg, m.keys.NextLevel):
		m.enter(m.level.ID%m.catalog.Len() + 1)

	case key.Matches(msg, m.keys.PrevLevel):
		m.enter((m.level.ID+m.catalog.Len()-2)%m.catalog.Len() + 1)

	case key.Matches(msg, m.keys.Regenerate):
		m.enter(m.level.ID)

	case key.Matches(msg, m.keys.Autoplay):
		if m.playing {
			m.playing = false
			m.status = "autoplay paused"
			return m, nil
		}
		m.startAutoplay()
		return m, tickCmd(m.config.TickRate)

	case key.Matches(msg, m.keys.Windows):
		m.scene.windows = !m.scene.windows

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// enter regenerates a level and resets the view.
func (m *Model) enter(id int) {
	lvl, err := m.catalog.Enter(id)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.level = lvl
	m.camera = 0
	m.playing = false
	m.report = course.Report{}
	m.status = ""
}

func (m *Model) scroll(dx float64) {
	m.camera = core.ClampF(m.camera+dx, 0, max(m.level.Length-m.viewWidth()/2, 0))
}

func (m Model) viewWidth() float64 {
	return float64(m.screen.Width()) * m.scene.xScale
}

func (m *Model) startAutoplay() {
	if len(m.report.Path) == 0 || m.frame >= len(m.report.Path) {
		m.report = m.level.Audit(m.scene.arena)
		m.frame = 0
	}
	m.playing = true
	m.status = "autoplay"
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.playing {
		return m, nil
	}

	if m.frame >= len(m.report.Path)-1 {
		m.playing = false
		m.frame = len(m.report.Path)
		m.finishAutoplay()
		return m, nil
	}

	m.frame++
	m.camera = max(m.report.Path[m.frame].X-m.viewWidth()/8, 0)
	return m, tickCmd(m.config.TickRate)
}

// finishAutoplay reports the audit and records it when a store is attached.
func (m *Model) finishAutoplay() {
	cleared, total := m.report.Cleared(), len(m.report.Outcomes)
	m.status = fmt.Sprintf("autoplay cleared %d/%d", cleared, total)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveAudit(storage.AuditRecord{
		LevelID:    m.level.ID,
		Mode:       string(m.level.Mode),
		Difficulty: m.level.Difficulty,
		Seed:       m.seed,
		Obstacles:  len(m.level.Obstacles),
		Holds:      m.level.HoldCount(),
		Cleared:    cleared,
	})
	if err != nil {
		m.logger.Warn("could not save audit", "level", m.level.ID, "error", err)
	}
}

// player returns the autoplay sample to draw, or nil when idle.
func (m Model) player() *course.Sample {
	if m.frame < len(m.report.Path) && (m.playing || m.frame > 0) {
		s := m.report.Path[m.frame]
		return &s
	}
	return nil
}

// View renders the HUD, the course and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.draw(m.screen, m.level, m.camera, m.player())

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m Model) hud() string {
	lvl := m.level
	title := titleStyle.Render(fmt.Sprintf("%d. %s", lvl.ID, lvl.Name))
	info := infoStyle.Render(fmt.Sprintf("%s  tier %d  %d obstacles (%d hold)  x %.0f/%.0f",
		registry.Title(lvl.Mode), lvl.Difficulty, len(lvl.Obstacles), lvl.HoldCount(), m.camera, lvl.Length))

	line := title + "  " + info
	if m.status != "" {
		line += "  " + statusStyle.Render(m.status)
	}
	return line
}

// Level returns the level currently shown.
func (m Model) Level() levels.LevelConfig {
	return m.level
}

// Run starts the previewer on levelID.
func Run(catalog *levels.Catalog, store *storage.Store, cfg core.ViewConfig, levelID int, seed int64, logger *log.Logger) error {
	model, err := NewModel(catalog, store, cfg, levelID, seed, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
