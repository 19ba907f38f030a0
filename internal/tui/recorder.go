package tui

import (
	"time"

	"github.com/san-kum/sortsim/internal/sorting"
)

// Recorder captures every frame before handing it to Next, if set.
type Recorder struct {
	Next sorting.Renderer

	Snapshots []sorting.Snapshot
	Sleeps    []time.Duration
}

func NewRecorder(next sorting.Renderer) *Recorder {
	return &Recorder{Next: next}
}

func (r *Recorder) Render(snap sorting.Snapshot) error {
	r.Snapshots = append(r.Snapshots, snap)
	if r.Next == nil {
		return nil
	}
	return r.Next.Render(snap)
}

func (r *Recorder) Sleep(d time.Duration) error {
	r.Sleeps = append(r.Sleeps, d)
	if r.Next == nil {
		return nil
	}
	return r.Next.Sleep(d)
}

// Last returns the most recent snapshot.
func (r *Recorder) Last() (sorting.Snapshot, bool) {
	if len(r.Snapshots) == 0 {
		return sorting.Snapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

// Frames returns the recorded data sequences in order.
func (r *Recorder) Frames() [][]int {
	out := make([][]int, len(r.Snapshots))
	for i, s := range r.Snapshots {
		out[i] = s.Data
	}
	return out
}
