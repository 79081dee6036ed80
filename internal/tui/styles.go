package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
)

// named variant colors -> terminal colors
var palette = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#EF4444"),
	"green":  lipgloss.Color("#22C55E"),
	"blue":   lipgloss.Color("#3B82F6"),
	"orange": lipgloss.Color("#F97316"),
	"purple": lipgloss.Color("#A855F7"),
	"teal":   lipgloss.Color("#14B8A6"),
	"white":  lipgloss.Color("#E6E6E6"),
}

func paletteColor(name string) lipgloss.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	return palette["white"]
}
