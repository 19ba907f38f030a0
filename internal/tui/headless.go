package tui

import (
	"time"

	"github.com/san-kum/sortsim/internal/sorting"
)

// Headless renders nothing and never blocks. A positive CancelAfter makes the
// CancelAfter-th Sleep return sorting.ErrCancelled.
type Headless struct {
	CancelAfter int

	renders int
	sleeps  int
}

func (h *Headless) Render(sorting.Snapshot) error {
	h.renders++
	return nil
}

func (h *Headless) Sleep(time.Duration) error {
	h.sleeps++
	if h.CancelAfter > 0 && h.sleeps >= h.CancelAfter {
		return sorting.ErrCancelled
	}
	return nil
}

func (h *Headless) Renders() int { return h.renders }
func (h *Headless) Sleeps() int  { return h.sleeps }
