package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortsim/internal/sorting"
)

// Styles are derived from a Theme once per frame.
type Styles struct {
	Title   lipgloss.Style
	Frame   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Overlay lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Cursor  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		// one column of border each side, which is what the config's
		// chrome_width accounts for
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Label: lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		Value: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		Key:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Success).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Cursor:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
	}
}

// AlgorithmStyle colors text in the algorithm's fixed color.
func AlgorithmStyle(a sorting.Algorithm) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(a.Hex()))
}

// GradientText fades text from one algorithm color to another.
func GradientText(text string, from, to sorting.Algorithm) string {
	if text == "" {
		return ""
	}
	sr, sg, sb := from.RGB()
	er, eg, eb := to.RGB()

	runes := []rune(text)
	n := len(runes)
	var out strings.Builder
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		color := lipgloss.Color(hexColor(lerp(sr, er, t), lerp(sg, eg, t), lerp(sb, eb, t)))
		out.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(c)))
	}
	return out.String()
}

func lerp(a, b uint8, t float64) int {
	return int(float64(a) + t*(float64(b)-float64(a)))
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}

func Separator(width int, st Styles) string {
	if width < 7 {
		return st.Muted.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return st.Muted.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}
