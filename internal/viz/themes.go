package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the palette of the selector screen. The cycling highlight blends
// from Cool to Hot as the wheel slows down.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Cool    lipgloss.Color
	Hot     lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Title:   lipgloss.Color("#00ffff"),
		Cool:    lipgloss.Color("#00ffff"),
		Hot:     lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Border:  lipgloss.Color("#444466"),
		Success: lipgloss.Color("#00ff88"),
	}

	ThemeCasino = Theme{
		Name:    "casino",
		Title:   lipgloss.Color("#ffd700"),
		Cool:    lipgloss.Color("#2e8b57"),
		Hot:     lipgloss.Color("#dc143c"),
		Text:    lipgloss.Color("#fff8dc"),
		Muted:   lipgloss.Color("#8b7d6b"),
		Border:  lipgloss.Color("#006400"),
		Success: lipgloss.Color("#ffd700"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		Cool:    lipgloss.Color("#888888"),
		Hot:     lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#444444"),
		Success: lipgloss.Color("#00ff00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Title:   lipgloss.Color("#00a8cc"),
		Cool:    lipgloss.Color("#0077be"),
		Hot:     lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Border:  lipgloss.Color("#003366"),
		Success: lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Title:   lipgloss.Color("#feca57"),
		Cool:    lipgloss.Color("#ff9ff3"),
		Hot:     lipgloss.Color("#ff4757"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Border:  lipgloss.Color("#5d3b5e"),
		Success: lipgloss.Color("#5fd068"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeCasino,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
