package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"goaffine/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(scene.Default(), scene.DefaultNormalDemo())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_CycleVariants(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, 0, m.sel)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.Equal(t, 1, m.sel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	require.Equal(t, 0, m.sel)

	// wraps around backwards
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	require.Equal(t, len(m.scn.Variants)-1, m.sel)
}

func TestModel_AnimationTicks(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(key(" "))
	m = updated.(Model)
	require.True(t, m.animating)
	require.Zero(t, m.animT)
	require.NotNil(t, cmd)

	updated, _ = m.Update(tickMsg{})
	m = updated.(Model)
	require.InDelta(t, animStep, m.animT, 1e-12)

	for m.animating {
		updated, _ = m.Update(tickMsg{})
		m = updated.(Model)
	}
	require.InDelta(t, 1, m.animT, 1e-12)
}

func TestModel_PasteWKTReplacesBase(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(key("p"))
	m = updated.(Model)
	require.True(t, m.pasteMode)

	m.ta.SetValue("POLYGON((0 0, 2 0, 1 2))")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.False(t, m.pasteMode)
	require.Equal(t, 3, m.scn.Base.Len())
	require.Len(t, m.scn.Variants, len(scene.Default().Variants))
}

func TestModel_PasteRejectsBadWKT(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(key("p"))
	m = updated.(Model)
	m.ta.SetValue("POINT(1 2)")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.True(t, m.pasteMode, "stays in paste mode on error")
	require.Contains(t, m.status, "wkt error")
}

func TestModel_ViewSmoke(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	require.Contains(t, out, "goaffine")
	require.Contains(t, out, "translate(2, -1)")

	// normal mode shows both dot products in the footer
	updated, _ := m.Update(key("n"))
	m = updated.(Model)
	out = m.View()
	require.Contains(t, out, "naive dot")
	require.Contains(t, out, "inverse-transpose dot")
}

func TestRenderCanvas_DrawsBraille(t *testing.T) {
	m := newTestModel(t)
	out := m.renderCanvas(40, 12)

	var dots int
	for _, r := range out {
		if r >= 0x2800 && r <= 0x28FF {
			dots++
		}
	}
	require.Greater(t, dots, 10, "canvas should contain braille strokes")
	require.Equal(t, 12, strings.Count(out, "\n")+1)
}
