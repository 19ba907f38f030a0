package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"

	"github.com/san-kum/sortsim/internal/analytics"
	"github.com/san-kum/sortsim/internal/layout"
	"github.com/san-kum/sortsim/internal/sorting"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetColor  = "\033[0m"

	fallbackWidth  = 80
	fallbackHeight = 24

	// title, label row, status, blank
	reservedRows = 4
	minChartRows = 3
	barCell      = '#'
)

type SizeFunc func() (width, height int, err error)

type Options struct {
	Limits layout.Limits
	// Chrome is subtracted from the terminal width before layout.
	Chrome int
	Color  bool
	// Size reports the terminal size. Nil queries out when it is a
	// terminal and falls back to 80x24 otherwise.
	Size SizeFunc
}

// LiveRenderer repaints the whole frame on every Render.
type LiveRenderer struct {
	ctx    context.Context
	out    io.Writer
	opts   Options
	frames int
}

func NewLiveRenderer(ctx context.Context, out io.Writer, opts Options) *LiveRenderer {
	if opts.Size == nil {
		opts.Size = sizeOf(out)
	}
	if opts.Limits == (layout.Limits{}) {
		opts.Limits = layout.DefaultLimits()
	}
	return &LiveRenderer{ctx: ctx, out: out, opts: opts}
}

func sizeOf(out io.Writer) SizeFunc {
	return func() (int, int, error) {
		if f, ok := out.(*os.File); ok && term.IsTerminal(f.Fd()) {
			return term.GetSize(f.Fd())
		}
		return fallbackWidth, fallbackHeight, nil
	}
}

// Frames is the number of frames written so far.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) Render(snap sorting.Snapshot) error {
	w, h, err := r.opts.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "%s  %s\n", snap.Algorithm, snap.Count)

	if len(snap.Data) > 0 {
		settings, err := layout.Calc(w-r.opts.Chrome, len(snap.Data), r.opts.Limits)
		if err != nil {
			return err
		}
		rows := h - reservedRows
		if rows < minChartRows {
			rows = minChartRows
		}
		r.drawChart(&b, snap, settings, rows)
	}

	if snap.Sorted {
		b.WriteString("sorted\n")
		for _, line := range analytics.For(snap.Algorithm).Lines() {
			fmt.Fprintf(&b, "  %-13s %s\n", line[0]+":", line[1])
		}
	}

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return err
	}
	r.frames++
	return nil
}

func (r *LiveRenderer) drawChart(b *strings.Builder, snap sorting.Snapshot, s layout.Settings, rows int) {
	top := snap.Max()
	heights := make([]int, len(snap.Data))
	for i, v := range snap.Data {
		heights[i] = layout.Height(v, top, rows)
	}

	on, off := "", ""
	if r.opts.Color {
		red, green, blue := snap.Algorithm.RGB()
		on, off = fmt.Sprintf("\033[38;2;%d;%d;%dm", red, green, blue), resetColor
	}

	cell := strings.Repeat(string(barCell), s.Width)
	blank := strings.Repeat(" ", s.Width)
	gap := strings.Repeat(" ", s.Gap)

	for row := rows; row >= 1; row-- {
		b.WriteString(on)
		for i, height := range heights {
			if i > 0 {
				b.WriteString(gap)
			}
			if height >= row {
				b.WriteString(cell)
			} else {
				b.WriteString(blank)
			}
		}
		b.WriteString(off)
		b.WriteByte('\n')
	}

	for i, v := range snap.Data {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(layout.Center(layout.Label(v, s.Width), s.Width))
	}
	b.WriteByte('\n')
}

// Sleep waits for d or until the context is done.
func (r *LiveRenderer) Sleep(d time.Duration) error {
	if d <= 0 {
		select {
		case <-r.ctx.Done():
			return sorting.ErrCancelled
		default:
			return nil
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-r.ctx.Done():
		return sorting.ErrCancelled
	}
}

func (r *LiveRenderer) Start() { _, _ = io.WriteString(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { _, _ = io.WriteString(r.out, showCursor) }
