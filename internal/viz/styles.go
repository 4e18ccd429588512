package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

type styles struct {
	title      lipgloss.Style
	subtitle   lipgloss.Style
	button     lipgloss.Style
	buttonBusy lipgloss.Style
	result     lipgloss.Style
	header     lipgloss.Style
	cell       lipgloss.Style
	selected   lipgloss.Style
	muted      lipgloss.Style
	border     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Hot).
			Padding(0, 2),
		buttonBusy: lipgloss.NewStyle().
			Foreground(t.Muted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		result: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Success).
			Padding(0, 2),
		header:   lipgloss.NewStyle().Bold(true).Foreground(t.Title).Padding(0, 1),
		cell:     lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Success).Padding(0, 1),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		border:   lipgloss.NewStyle().Foreground(t.Border),
	}
}

// cyclingStyle colors the cycling row; it heats up as the run slows down.
func cyclingStyle(t Theme, progress float64) lipgloss.Style {
	c := HighlightColor(t, progress)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(c).
		Padding(0, 1)
}

// HighlightColor is the cycling-row color at the given run progress in [0, 1].
func HighlightColor(t Theme, progress float64) lipgloss.Color {
	return blend(t.Cool, t.Hot, ease.OutQuad(clamp01(progress)))
}

func blend(from, to lipgloss.Color, f float64) lipgloss.Color {
	switch {
	case f <= 0:
		return from
	case f >= 1:
		return to
	}
	a, err := colorful.Hex(string(from))
	if err != nil {
		return to
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	return lipgloss.Color(a.BlendLab(b, f).Clamped().Hex())
}

// GradientText renders text with a per-rune color ramp.
func GradientText(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		f := float64(i) / float64(len(runes)-1)
		b.WriteString(lipgloss.NewStyle().Foreground(blend(from, to, f)).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders percent of width cells filled.
func ProgressBar(t Theme, percent float64, width int) string {
	filled := int(clamp01(percent) * float64(width))
	bar := strings.Repeat("█", filled)
	rest := strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(HighlightColor(t, percent)).Render(bar) +
		lipgloss.NewStyle().Foreground(t.Border).Render(rest)
}

func Separator(t Theme, width int) string {
	mid := width / 2
	if mid < 3 {
		return ""
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
