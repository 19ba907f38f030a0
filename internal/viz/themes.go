package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the chrome around the chart. Bars always use the algorithm
// color.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Border  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Title:   lipgloss.Color("#ffffff"),
		Border:  lipgloss.Color("#444466"),
		Text:    lipgloss.Color("#dddddd"),
		Muted:   lipgloss.Color("#666688"),
		Accent:  lipgloss.Color("#00cccc"),
		Success: lipgloss.Color("#5fd068"),
		Error:   lipgloss.Color("#ff4757"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Title:   lipgloss.Color("#ffffff"),
		Border:  lipgloss.Color("#888888"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#777777"),
		Accent:  lipgloss.Color("#ffffff"),
		Success: lipgloss.Color("#ffffff"),
		Error:   lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Title:   lipgloss.Color("#e0f0ff"),
		Border:  lipgloss.Color("#0077be"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Accent:  lipgloss.Color("#ffd700"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Title:   lipgloss.Color("#fff5f5"),
		Border:  lipgloss.Color("#ff6b6b"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Accent:  lipgloss.Color("#feca57"),
		Success: lipgloss.Color("#5fd068"),
		Error:   lipgloss.Color("#ff4757"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Title:   lipgloss.Color("#88ff88"),
		Border:  lipgloss.Color("#00cc00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Accent:  lipgloss.Color("#88ff88"),
		Success: lipgloss.Color("#88ff88"),
		Error:   lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeMono,
		ThemeOcean,
		ThemeSunset,
		ThemeRetro,
	}
)

// GetTheme returns the named theme, or classic when the name is unknown.
func GetTheme(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeClassic
}

func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme cycles through Themes.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
