package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-overworld/internal/overworld"
)

// Options configures one interactive session.
type Options struct {
	Key         string             // Position storage key
	Seed        int64              // Weather seed; 0 uses the current time
	TickRate    int                // Animation rate; 0 uses the config, negative disables
	SnapshotDir string             // Where ctrl+s writes PNGs; empty disables it
	Renderer    *lipgloss.Renderer // nil uses the default renderer
}

// Model is the Bubble Tea model for exploring a world.
type Model struct {
	env        *Environment
	session    *overworld.Session
	controller *overworld.Controller
	keys       KeyMap
	help       help.Model
	renderer   *lipgloss.Renderer
	styles     hudStyles
	opts       Options
	tickRate   int
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model with a fresh session of env.
func NewModel(env *Environment, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	session, err := env.NewSession(opts.Key, opts.Seed)
	if err != nil {
		return Model{}, err
	}

	tickRate := env.Config.TickRate()
	switch {
	case opts.TickRate < 0:
		tickRate = 0
	case opts.TickRate > 0 && tickRate > 0:
		tickRate = opts.TickRate
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		env:        env,
		session:    session,
		controller: overworld.NewController(session, keys.KeyMap),
		keys:       keys,
		help:       h,
		renderer:   opts.Renderer,
		styles:     newHUDStyles(opts.Renderer),
		opts:       opts,
		tickRate:   tickRate,
	}, nil
}

// Init starts the animation loop when weather animation is on.
func (m Model) Init() tea.Cmd {
	if m.tickRate > 0 {
		return tickCmd(m.tickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.controller.Dispatch(msg) {
		m.status = ""
	}
	return m, nil
}

// handleTick redraws the frame so the weather moves without input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tickRate <= 0 {
		return m, nil
	}
	m.session.Frame()
	return m, tickCmd(m.tickRate)
}

// saveSnapshot writes the current frame as PNG.
func (m *Model) saveSnapshot() {
	if m.opts.SnapshotDir == "" {
		m.status = "snapshots disabled"
		return
	}
	path := snapshotPath(m.opts.SnapshotDir, m.env.World.ID, time.Now())
	if err := WriteSnapshot(path, m.session.Surface(), 4); err != nil {
		m.env.Logger.Warn("snapshot failed", "error", err)
		m.status = "snapshot failed"
		return
	}
	m.env.Logger.Info("snapshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current frame, HUD and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderSurface(m.renderer, m.session.Surface(), m.env.Config.Display.Scale))
	if m.env.Config.Display.ShowHUD {
		b.WriteString("\n")
		b.WriteString(renderHUD(m.styles, m.env.World.Name, m.session, m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Session returns the model's session.
func (m Model) Session() *overworld.Session {
	return m.session
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program for a local session.
func Run(env *Environment, opts Options) error {
	model, err := NewModel(env, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
