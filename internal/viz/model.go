package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/walklab/internal/config"
	"github.com/san-kum/walklab/internal/stats"
	"github.com/san-kum/walklab/internal/walk"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type TickMsg time.Time

// GenerateFunc produces the next frame. Injectable so loop tests can
// count regenerations without a terminal.
type GenerateFunc func(cfg walk.Config, rng *rand.Rand) walk.Frame

// Model is the tick loop: every tick it regenerates the frame and
// redraws; a quit key exits before any pending tick is processed.
type Model struct {
	cfg      walk.Config
	tick     time.Duration
	rng      *rand.Rand
	gen      GenerateFunc
	renderer Renderer

	frame  walk.Frame
	frames int
	paused bool

	width, height int
	keys          KeyMap
	help          help.Model
}

// NewModel builds the loop state and generates the initial frame, so the
// first draw already has data.
func NewModel(cfg *config.Config, renderer Renderer) Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := walk.Generate
	if cfg.Workers > 1 {
		workers := cfg.Workers
		gen = func(c walk.Config, rng *rand.Rand) walk.Frame {
			return walk.GenerateParallel(c, rng.Int63(), workers)
		}
	}

	m := Model{
		cfg:      cfg.WalkConfig(),
		tick:     time.Duration(cfg.TickMs) * time.Millisecond,
		rng:      rand.New(rand.NewSource(seed)),
		gen:      gen,
		renderer: renderer,
		width:    defaultWidth,
		height:   defaultHeight,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.regenerate()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and tick events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Regen):
			m.regenerate()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case TickMsg:
		if !m.paused {
			m.regenerate()
		}
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// regenerate replaces the frame wholesale; the renderer only ever sees a
// fully built frame.
func (m *Model) regenerate() {
	m.frame = m.gen(m.cfg, m.rng)
	m.frames++
}

// View renders the chart with a stats sidebar and help footer.
func (m Model) View() string {
	chartW := m.width - 30
	if chartW < 40 {
		chartW = 40
	}
	chartH := m.height - 6
	if chartH < 6 {
		chartH = 6
	}

	chart := chartStyle.Render(m.renderer.Render(m.frame, chartW, chartH))

	mean, stddev := stats.Moments(m.frame)
	var s strings.Builder
	status := "RUNNING"
	if m.paused {
		status = pausedStyle.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Samples") + valueStyle.Render(fmt.Sprintf("%d", m.cfg.Samples)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.cfg.Steps)) + "\n")
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.frames)) + "\n")
	s.WriteString(labelStyle.Render("Mean") + valueStyle.Render(fmt.Sprintf("%.3f", mean)) + "\n")
	s.WriteString(labelStyle.Render("Stddev") + valueStyle.Render(fmt.Sprintf("%.3f", stddev)) + "\n")
	sidebar := statsStyle.Render(s.String())

	header := headerStyle.Render("CENTRAL LIMIT THEOREM")
	body := lipgloss.JoinHorizontal(lipgloss.Top, chart, sidebar)
	footer := helpStyle.Render(m.help.View(m.keys))

	return header + "\n" + body + "\n" + footer
}

// Run drives the loop inside the alternate screen; bubbletea restores the
// terminal on every exit path and surfaces terminal failures as errors.
func Run(cfg *config.Config) error {
	var renderer Renderer
	switch cfg.Chart {
	case "line":
		renderer = NewLineRenderer(cfg.WalkConfig())
	default:
		renderer = BarRenderer{}
	}

	p := tea.NewProgram(NewModel(cfg, renderer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("visualization failed: %w", err)
	}
	return nil
}
