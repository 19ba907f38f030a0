package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortsim/internal/layout"
	"github.com/san-kum/sortsim/internal/sorting"
)

const barRune = "█"

// RenderChart draws snap as rows of bars, tallest value at full height, with
// a label row underneath. Bars use the algorithm color; labels use
// labelStyle. The result is exactly s.Span(len(snap.Data)) columns wide.
func RenderChart(snap sorting.Snapshot, s layout.Settings, height int, labelStyle lipgloss.Style) string {
	if len(snap.Data) == 0 || height <= 0 {
		return ""
	}

	top := snap.Max()
	heights := make([]int, len(snap.Data))
	for i, v := range snap.Data {
		heights[i] = layout.Height(v, top, height)
	}

	bar := AlgorithmStyle(snap.Algorithm)
	cell := strings.Repeat(barRune, s.Width)
	blank := strings.Repeat(" ", s.Width)
	gap := strings.Repeat(" ", s.Gap)

	lines := make([]string, 0, height+1)
	var row strings.Builder
	for level := height; level >= 1; level-- {
		row.Reset()
		for i, h := range heights {
			if i > 0 {
				row.WriteString(gap)
			}
			if h >= level {
				row.WriteString(cell)
			} else {
				row.WriteString(blank)
			}
		}
		lines = append(lines, bar.Render(row.String()))
	}

	row.Reset()
	for i, v := range snap.Data {
		if i > 0 {
			row.WriteString(gap)
		}
		row.WriteString(layout.Center(layout.Label(v, s.Width), s.Width))
	}
	lines = append(lines, labelStyle.Render(row.String()))

	return strings.Join(lines, "\n")
}
