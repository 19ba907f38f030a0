package viz

import (
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortsim/internal/layout"
	"github.com/san-kum/sortsim/internal/logger"
	"github.com/san-kum/sortsim/internal/sorting"
)

// ErrFrontendClosed is returned to the engine when the terminal program has
// exited underneath it.
var ErrFrontendClosed = errors.New("viz: frontend closed")

type Options struct {
	Limits layout.Limits
	// Chrome is the number of columns taken by the frame around the chart.
	Chrome int
	Theme  Theme
	Log    *logger.Logger
	// ProgramOptions are appended after tea.WithAltScreen.
	ProgramOptions []tea.ProgramOption
}

type sender interface {
	Send(msg tea.Msg)
}

// Frontend implements sorting.Renderer on top of a bubbletea program. The
// engine runs on a command goroutine; every Render hands the snapshot to
// the program and waits until Update has taken it, so frames are shown in
// order and never skipped.
type Frontend struct {
	opts Options
	send sender

	mu     sync.Mutex
	width  int
	height int

	cancel     chan struct{}
	cancelOnce sync.Once
	done       chan struct{}
	doneOnce   sync.Once
}

type frameMsg struct {
	snap     sorting.Snapshot
	settings layout.Settings
	ack      chan struct{}
}

type doneMsg struct {
	count sorting.Count
	err   error
}

func NewFrontend(opts Options) *Frontend {
	if opts.Limits == (layout.Limits{}) {
		opts.Limits = layout.DefaultLimits()
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeClassic
	}
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}
	return &Frontend{
		opts:   opts,
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Run plays e inside an alt-screen program and returns its result. The
// program quits when the engine returns; pressing a cancel key makes the
// engine return sorting.ErrCancelled.
func (f *Frontend) Run(e *sorting.Engine) (sorting.Count, error) {
	m := newRunModel(f, e.Algorithm(), func() (sorting.Count, error) { return e.Run(f) })
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, f.opts.ProgramOptions...)
	p := tea.NewProgram(m, opts...)
	f.send = p

	final, err := p.Run()
	f.close()
	if err != nil {
		return sorting.Count{}, err
	}
	rm, ok := final.(runModel)
	if !ok {
		return sorting.Count{}, ErrFrontendClosed
	}
	return rm.result()
}

func (f *Frontend) Render(snap sorting.Snapshot) error {
	select {
	case <-f.cancel:
		return sorting.ErrCancelled
	case <-f.done:
		return ErrFrontendClosed
	default:
	}

	var settings layout.Settings
	if len(snap.Data) > 0 {
		w, _ := f.size()
		s, err := layout.Calc(w-f.opts.Chrome, len(snap.Data), f.opts.Limits)
		if err != nil {
			return err
		}
		settings = s
	}

	ack := make(chan struct{})
	f.send.Send(frameMsg{snap: snap, settings: settings, ack: ack})
	select {
	case <-ack:
		return nil
	case <-f.cancel:
		return sorting.ErrCancelled
	case <-f.done:
		return ErrFrontendClosed
	}
}

func (f *Frontend) Sleep(d time.Duration) error {
	if d <= 0 {
		select {
		case <-f.cancel:
			return sorting.ErrCancelled
		case <-f.done:
			return ErrFrontendClosed
		default:
			return nil
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-f.cancel:
		return sorting.ErrCancelled
	case <-f.done:
		return ErrFrontendClosed
	}
}

// Cancel asks the running engine to stop at its next tick.
func (f *Frontend) Cancel() {
	f.cancelOnce.Do(func() {
		f.opts.Log.Info("cancel requested")
		close(f.cancel)
	})
}

func (f *Frontend) close() {
	f.doneOnce.Do(func() { close(f.done) })
}

func (f *Frontend) setSize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width, f.height = w, h
}

func (f *Frontend) size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}
