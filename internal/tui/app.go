// Package tui implements the interactive landing page.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/logging"
	"github.com/nondualworks/docspine-landing/internal/playback"
	"github.com/nondualworks/docspine-landing/internal/tui/bookshelf"
	"github.com/nondualworks/docspine-landing/internal/tui/components"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

const (
	minWidth   = 60
	minHeight  = 15
	navHeight  = 2
	helpHeight = 1
)

// Options configures the page.
type Options struct {
	Catalog *catalog.Catalog
	Mode    styles.ThemeMode
	Speed   float64

	// Clock drives playback. Nil uses a LoopClock.
	Clock playback.Clock

	// Prefetch runs once at start on a command goroutine.
	Prefetch func()

	Logger *zerolog.Logger
}

// Model is the bubbletea model of the landing page.
type Model struct {
	catalog *catalog.Catalog
	mode    styles.ThemeMode
	styles  styles.Styles

	tracker      *bookshelf.Tracker
	hoveredLayer int

	clock    playback.Clock
	queue    callbackQueue
	engine   *playback.Engine
	prefetch func()

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	page     pageLayout
	nav      string

	width  int
	height int
	ready  bool

	logger zerolog.Logger
	err    error
}

// New builds the page model. Playback starts in Init.
func New(opts Options) (Model, error) {
	if opts.Catalog == nil {
		return Model{}, errors.New("catalog is required")
	}
	styleSet, err := styles.StylesFor(opts.Mode)
	if err != nil {
		return Model{}, err
	}

	logger := logging.Component("tui")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	clock := opts.Clock
	if clock == nil {
		clock = playback.NewLoopClock(len(opts.Catalog.Script))
	}
	queue, _ := clock.(callbackQueue)

	speed := opts.Speed
	if speed == 0 {
		speed = 1
	}
	engine, err := playback.New(clock, playback.WithSpeed(speed), playback.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}

	m := Model{
		catalog:      opts.Catalog,
		mode:         opts.Mode,
		styles:       styleSet,
		tracker:      bookshelf.NewTracker(opts.Catalog.Spines),
		hoveredLayer: -1,
		clock:        clock,
		queue:        queue,
		engine:       engine,
		prefetch:     opts.Prefetch,
		keys:         defaultKeyMap(),
		help:         help.New(),
		logger:       logger,
	}
	m.applyHelpStyles()
	return m, nil
}

// Run launches the page on the alternate screen.
func Run(ctx context.Context, opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if fm, ok := final.(Model); ok {
		fm.shutdown()
		if fm.err != nil {
			return fm.err
		}
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Err returns the precondition failure that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Mode returns the current theme mode.
func (m Model) Mode() styles.ThemeMode {
	return m.mode
}

// Engine exposes playback state.
func (m Model) Engine() *playback.Engine {
	return m.engine
}

// Tracker exposes hover state.
func (m Model) Tracker() *bookshelf.Tracker {
	return m.tracker
}

func (m Model) Init() tea.Cmd {
	m.engine.Schedule(m.catalog.Script)
	m.logger.Debug().Str("mode", m.mode.String()).Int("spines", m.tracker.Len()).Msg("page mounted")
	return tea.Batch(waitForReveal(m.queue), prefetchFonts(m.prefetch))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case revealMsg:
		if msg.fn != nil {
			msg.fn()
		}
		queue := m.queue
		next, cmd := m.refresh()
		return next, tea.Batch(cmd, waitForReveal(queue))

	case fontsDoneMsg:
		m.logger.Debug().Msg("font prefetch finished")
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Theme):
		next := m.mode.Toggle()
		styleSet, err := styles.StylesFor(next)
		if err != nil {
			return m.fail(err)
		}
		m.mode = next
		m.styles = styleSet
		m.applyHelpStyles()
		m.logger.Debug().Str("mode", next.String()).Msg("theme toggled")
		return m.refresh()

	case key.Matches(msg, m.keys.Next):
		m.tracker.Next()
		return m.refresh()

	case key.Matches(msg, m.keys.Prev):
		m.tracker.Prev()
		return m.refresh()

	case key.Matches(msg, m.keys.Clear):
		m.tracker.Clear()
		m.hoveredLayer = -1
		return m.refresh()

	case key.Matches(msg, m.keys.Replay):
		m.engine.Schedule(m.catalog.Script)
		return m.refresh()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	spine, layer := -1, -1
	if msg.Y >= navHeight && msg.Y < navHeight+m.viewport.Height {
		y := msg.Y - navHeight + m.viewport.YOffset
		spine = m.page.hitShelf(msg.X, y)
		layer = m.page.hitLayer(msg.X, y)
	}

	prev, active := m.tracker.Hovered()
	if !active {
		prev = -1
	}
	if spine == prev && layer == m.hoveredLayer {
		return m, nil
	}

	if spine >= 0 {
		if err := m.tracker.Set(spine); err != nil {
			return m.fail(err)
		}
	} else {
		m.tracker.Clear()
	}
	m.hoveredLayer = layer
	return m.refresh()
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return m.smallView()
	}
	footer := components.Fill(m.styles.Page, m.help.View(m.keys), m.width)
	return m.nav + "\n" + m.viewport.View() + "\n" + footer
}

func (m Model) smallView() string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Text.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	)
}

func (m *Model) resize() {
	helpRows := helpHeight
	if m.help.ShowAll {
		helpRows = lipgloss.Height(m.help.View(m.keys))
	}
	height := max(m.height-navHeight-helpRows, 1)
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.help.Width = m.width
}

// refresh rebuilds the page from current state. Every state change goes
// through here so token readers always see the active theme.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	page, err := m.renderPage()
	if err != nil {
		return m.fail(err)
	}
	m.page = page
	m.viewport.Style = lipgloss.NewStyle().Background(m.styles.Theme.Tokens.Background.Solid())
	m.viewport.SetContent(page.content)
	m.nav = components.RenderNav(m.styles, components.NavBar{
		Product: m.catalog.Product,
		License: m.catalog.License,
		Links:   m.catalog.Nav,
		Mode:    m.mode,
		Width:   m.width,
	})
	return m, nil
}

// fail treats a precondition violation as a programming error.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error().Err(err).Msg("page state violated a precondition")
	m.err = err
	m.shutdown()
	return m, tea.Quit
}

func (m Model) shutdown() {
	m.engine.Teardown()
	if closer, ok := m.clock.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (m *Model) applyHelpStyles() {
	keyStyle := m.styles.Dim
	descStyle := m.styles.Subtle
	sep := m.styles.Subtle
	m.help.Styles = help.Styles{
		Ellipsis:       sep,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sep,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sep,
	}
	m.help.ShortSeparator = " · "
}
