// Package console prints a scene and the normal-transform demo to a
// terminal.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"goaffine/internal/scene"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
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

func labelStyle(color string) lipgloss.Style {
	c, ok := palette[color]
	if !ok {
		c = palette["white"]
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// Print lists every polygon's vertices and the normal demo vectors.
func Print(w io.Writer, s scene.Scene, d scene.NormalDemo) {
	fmt.Fprintln(w, titleStyle.Render("polygon transforms"))
	fmt.Fprintf(w, "%s %s\n", labelStyle("white").Render("base"), s.Base)
	fmt.Fprintf(w, "     %s\n", dimStyle.Render("centroid "+s.Base.Centroid().String()))

	for _, v := range s.Variants {
		fmt.Fprintf(w, "%s %s\n", labelStyle(v.Color).Render(v.Label), v.Poly)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("transforming normals"))
	fmt.Fprintf(w, "M               = [[%.4f, %.4f], [%.4f, %.4f]]\n", d.M.A, d.M.B, d.M.C, d.M.D)
	fmt.Fprintf(w, "tangent         = %s\n", d.Tangent)
	fmt.Fprintf(w, "normal          = %s\n", d.Normal)
	fmt.Fprintf(w, "M·tangent       = %s\n", d.MovedTangent)
	fmt.Fprintf(w, "M·normal        = %s  %s\n", d.NaiveNormal,
		badStyle.Render(fmt.Sprintf("naive, dot = %.4f", d.NaiveDot)))
	fmt.Fprintf(w, "M⁻ᵀ·normal      = %s  %s\n", d.CorrectNormal,
		okStyle.Render(fmt.Sprintf("inverse-transpose, dot = %.4f", d.CorrectDot)))
}
