package sorting

import "time"

// Renderer is the render/pacing contract between the engine and a frontend.
//
// Render draws a snapshot and may fail with an I/O error. Sleep blocks for up
// to d while watching for a cancellation request; it returns ErrCancelled when
// one is observed and an I/O error when the input source fails.
type Renderer interface {
	Render(snap Snapshot) error
	Sleep(d time.Duration) error
}

// Ticker lets a frontend replace the default render-then-sleep composition.
type Ticker interface {
	Tick(snap Snapshot, d time.Duration) error
}

// Tick renders snap and then sleeps for d, stopping at the first failure.
func Tick(r Renderer, snap Snapshot, d time.Duration) error {
	if t, ok := r.(Ticker); ok {
		return t.Tick(snap, d)
	}
	if err := r.Render(snap); err != nil {
		return err
	}
	return r.Sleep(d)
}
