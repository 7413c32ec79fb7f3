package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameInterval is how often the widget asks for a frame while
// toasts are on screen, so expiry and the countdown animate.
const DefaultFrameInterval = 100 * time.Millisecond

// frameMsg drives the repaint loop for one Model.
type frameMsg struct {
	id string
}

// Model embeds a Toasts registry in a Bubble Tea program. It owns the
// frame Context, reacts to window resizes and mouse clicks, and keeps a
// tick loop running while toasts are visible. Compose the toasts over
// your view with Overlay.
type Model struct {
	toasts   *Toasts
	ctx      *Context
	interval time.Duration
	ticking  bool
}

// NewModel wraps a Toasts registry for use in a Bubble Tea program.
func NewModel(toasts *Toasts) Model {
	return Model{
		toasts:   toasts,
		ctx:      NewContext(0, 0),
		interval: DefaultFrameInterval,
	}
}

// Interval sets the repaint interval.
func (m Model) Interval(d time.Duration) Model {
	m.interval = d
	return m
}

// Toasts returns the underlying registry.
func (m Model) Toasts() *Toasts {
	return m.toasts
}

// Context returns the frame context.
func (m Model) Context() *Context {
	return m.ctx
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window resizes, mouse dismissal and the frame tick.
// Forward messages from your program's Update.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctx.SetViewport(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			m.toasts.DismissAt(m.ctx, msg.X, msg.Y)
		}
		return m, nil

	case frameMsg:
		if msg.id != m.toasts.id {
			return m, nil
		}
		m.ticking = false
		cmd := m.schedule()
		return m, cmd
	}

	return m, nil
}

// Push adds a toast and starts the frame loop.
func (m Model) Push(t Toast) (Model, tea.Cmd) {
	m.toasts.Add(t)
	cmd := m.schedule()
	return m, cmd
}

// Info adds an info toast that expires d from now.
func (m Model) Info(text string, d time.Duration) (Model, tea.Cmd) {
	m.toasts.Info(text, d)
	cmd := m.schedule()
	return m, cmd
}

// Warning adds a warning toast that expires d from now.
func (m Model) Warning(text string, d time.Duration) (Model, tea.Cmd) {
	m.toasts.Warning(text, d)
	cmd := m.schedule()
	return m, cmd
}

// Error adds an error toast that expires d from now.
func (m Model) Error(text string, d time.Duration) (Model, tea.Cmd) {
	m.toasts.Error(text, d)
	cmd := m.schedule()
	return m, cmd
}

// Success adds a success toast that expires d from now.
func (m Model) Success(text string, d time.Duration) (Model, tea.Cmd) {
	m.toasts.Success(text, d)
	cmd := m.schedule()
	return m, cmd
}

// Overlay runs the frame for the registry and splices the rendered
// toasts over the given background view. Call it last in your View.
func (m Model) Overlay(background string) string {
	placed := m.toasts.Show(m.ctx)
	if len(placed) == 0 {
		return background
	}
	return Composite(background, placed, m.ctx.Viewport())
}

// schedule arms the next frame tick when one is needed and none is in
// flight. The repaint flag raised by Show is consumed here.
func (m *Model) schedule() tea.Cmd {
	repaint := m.ctx.TakeRepaint()
	if m.ticking {
		return nil
	}
	if !repaint && m.toasts.Active(m.ctx) == 0 {
		return nil
	}
	m.ticking = true
	id := m.toasts.id
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}
