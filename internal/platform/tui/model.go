package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/game"
	"github.com/vovakirdan/ohoy/internal/platform"
	"github.com/vovakirdan/ohoy/internal/render"
)

// frameMsg asks the model to draw without any input.
type frameMsg struct{}

// Options configure a Model.
type Options struct {
	Runtime       core.RuntimeConfig // viewport size and the seed the world came from
	Pace          time.Duration      // delay between typed journal characters
	Recorder      *platform.Recorder // nil disables the voyage log
	ScreenshotDir string
	Logger        *log.Logger
}

// Model is the Bubble Tea model for a voyage. Bubble Tea supplies keys and
// timers; View is unused because frames are flushed through the renderer.
type Model struct {
	session  *game.Session
	renderer *render.Renderer
	keys     KeyMap
	opts     Options
	log      *log.Logger

	ticking  bool
	quitting bool
	err      error
}

// NewModel creates a model that draws the session onto out.
func NewModel(sess *game.Session, out render.Terminal, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Pace <= 0 {
		opts.Pace = 40 * time.Millisecond
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = platform.ScreenshotDir()
	}

	keys := DefaultKeyMap()
	sess.SetHint(keys.Hint())

	return Model{
		session:  sess,
		renderer: render.New(out, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:     keys,
		opts:     opts,
		log:      opts.Logger,
	}
}

// Init draws the first frame.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return frameMsg{} }
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize()

	case TickMsg:
		return m.handleTick()

	case frameMsg:
		return m.draw(nil)
	}

	return m, nil
}

// handleKey maps the key to an action and lets the session apply it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Capture) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	outcome := m.session.Handle(action)
	if m.session.Ended() {
		return m.finish()
	}
	if outcome == game.OutcomeIgnored {
		return m, nil
	}

	var cmd tea.Cmd
	if m.session.Journal().Typing() && !m.ticking {
		m.ticking = true
		cmd = tickCmd(m.opts.Pace)
	}
	return m.draw(cmd)
}

// handleResize repaints every cell. The terminal may have reflowed or
// cleared the old frame, so the last flushed buffer no longer matches it.
func (m Model) handleResize() (tea.Model, tea.Cmd) {
	m.renderer.Invalidate()
	return m.draw(nil)
}

// handleTick types one more journal character.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Mode() != game.ModeJournal {
		m.ticking = false
		return m, nil
	}

	var cmd tea.Cmd
	if m.session.AdvanceJournal() {
		cmd = tickCmd(m.opts.Pace)
	} else {
		m.ticking = false
	}
	return m.draw(cmd)
}

// draw renders the session into the next frame and flushes the difference.
func (m Model) draw(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.session.Render(m.renderer.Next())
	if _, err := m.renderer.Flush(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// finish records the voyage and stops the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	if m.opts.Recorder != nil {
		m.opts.Recorder.Record(m.session.Summary())
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot writes the frame on the terminal to the screenshot dir.
func (m Model) saveScreenshot() {
	scenario := "voyage"
	if m.opts.Recorder != nil {
		scenario = m.opts.Recorder.Scenario
	}
	path, err := platform.SaveScreenshot(m.opts.ScreenshotDir, scenario, m.renderer.Current())
	if err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View is empty; the renderer writes to the terminal directly.
func (m Model) View() string { return "" }

// Err returns the error that stopped the model, if any.
func (m Model) Err() error { return m.err }

// Session returns the session the model drives.
func (m Model) Session() *game.Session { return m.session }

// Run plays a session on the terminal until it ends.
func Run(sess *game.Session, opts Options) error {
	term := NewANSITerminal(os.Stdout)
	if err := term.Enter(); err != nil {
		return err
	}
	//nolint:errcheck // Best-effort restore, the program is exiting
	defer term.Leave()

	p := tea.NewProgram(
		NewModel(sess, term, opts),
		tea.WithoutRenderer(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
