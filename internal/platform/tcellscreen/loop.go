package tcellscreen

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/game"
	"github.com/vovakirdan/ohoy/internal/platform"
	"github.com/vovakirdan/ohoy/internal/render"
)

// typeTick is the payload of the interrupt that types a journal character.
type typeTick struct{}

// Options configure a tcell voyage.
type Options struct {
	Width, Height int
	Pace          time.Duration
	Hint          string
	Recorder      *platform.Recorder // nil disables the voyage log
	ScreenshotDir string
	Logger        *log.Logger
}

// Action translates a tcell key event into a game action.
func Action(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEscape:
		return core.ActionCancel
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return core.ActionInteract
		case 'j', 'J':
			return core.ActionJournal
		}
	}
	return core.ActionNone
}

// Play opens the terminal through tcell and runs the session on it.
func Play(sess *game.Session, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellscreen: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellscreen: init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return Run(screen, sess, opts)
}

// Run drives the session from the screen's events until it ends or the
// screen is finalized. The screen must already be initialized.
func Run(screen tcell.Screen, sess *game.Session, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Pace <= 0 {
		opts.Pace = 40 * time.Millisecond
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = platform.ScreenshotDir()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = screen.Size()
	}
	sess.SetHint(opts.Hint)

	r := render.New(NewTerminal(screen), opts.Width, opts.Height)
	draw := func() error {
		sess.Render(r.Next())
		_, err := r.Flush()
		return err
	}
	ticking := false
	tick := func() {
		time.AfterFunc(opts.Pace, func() {
			//nolint:errcheck // Dropped only when the screen is closing
			screen.PostEvent(tcell.NewEventInterrupt(typeTick{}))
		})
	}

	if err := draw(); err != nil {
		return err
	}

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil

		case *tcell.EventResize:
			screen.Sync()
			r.Invalidate()

		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(typeTick); !ok {
				continue
			}
			if sess.Mode() != game.ModeJournal {
				ticking = false
				continue
			}
			if sess.AdvanceJournal() {
				tick()
			} else {
				ticking = false
			}

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlS {
				path, err := platform.SaveScreenshot(opts.ScreenshotDir, scenarioOf(opts.Recorder), r.Current())
				if err != nil {
					opts.Logger.Warn("screenshot failed", "err", err)
				} else {
					opts.Logger.Info("screenshot saved", "path", path)
				}
				continue
			}

			action := Action(ev)
			if action == core.ActionNone {
				continue
			}
			outcome := sess.Handle(action)
			if sess.Ended() {
				if opts.Recorder != nil {
					opts.Recorder.Record(sess.Summary())
				}
				return nil
			}
			if outcome == game.OutcomeIgnored {
				continue
			}
			if sess.Journal().Typing() && !ticking {
				ticking = true
				tick()
			}

		default:
			continue
		}

		if err := draw(); err != nil {
			return err
		}
	}
}

func scenarioOf(rec *platform.Recorder) string {
	if rec == nil {
		return "voyage"
	}
	return rec.Scenario
}
