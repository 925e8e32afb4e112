package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Border lipgloss.Color
	Point  lipgloss.Color
	Vertex lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeMono = Theme{
		Name:   "mono",
		Border: lipgloss.Color("#666666"),
		Point:  lipgloss.Color("#ffffff"),
		Vertex: lipgloss.Color("#1293d8"),
		Accent: lipgloss.Color("#1293d8"),
		Text:   lipgloss.Color("#e0e0e0"),
		Muted:  lipgloss.Color("#777777"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Border: lipgloss.Color("#ff00ff"),
		Point:  lipgloss.Color("#00ffff"),
		Vertex: lipgloss.Color("#ffff00"),
		Accent: lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
	}

	ThemeAmber = Theme{
		Name:   "amber",
		Border: lipgloss.Color("#805000"),
		Point:  lipgloss.Color("#ffb000"),
		Vertex: lipgloss.Color("#ff5f00"),
		Accent: lipgloss.Color("#ffcc66"),
		Text:   lipgloss.Color("#ffb000"),
		Muted:  lipgloss.Color("#805000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Border: lipgloss.Color("#4488aa"),
		Point:  lipgloss.Color("#00a8cc"),
		Vertex: lipgloss.Color("#ffd700"),
		Accent: lipgloss.Color("#00ff88"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	CurrentTheme = ThemeMono

	Themes = []Theme{
		ThemeMono,
		ThemeCyberpunk,
		ThemeAmber,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to mono.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
