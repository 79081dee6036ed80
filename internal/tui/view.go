package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 30

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" goaffine ─ 2D affine transform explorer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	sbWidth := 0
	if m.showSidebar {
		sbWidth = sidebarWidth
		m.l.SetSize(sbWidth-2, contentHeight-2)
		sidebar = lipgloss.NewStyle().Width(sbWidth).Render(m.l.View())
	}

	canvasWidth := contentWidth - sbWidth - 1
	if canvasWidth < 10 {
		canvasWidth = 10
	}
	canvasHeight := contentHeight
	if m.showTable {
		canvasHeight -= m.tbl.Height() + 1
		if canvasHeight < 4 {
			canvasHeight = 4
		}
	}

	var canvas string
	if m.pasteMode {
		m.ta.SetWidth(canvasWidth)
		canvas = m.ta.View()
	} else {
		canvas = m.renderCanvas(canvasWidth, canvasHeight)
	}

	mapCol := lipgloss.NewStyle().Width(canvasWidth).Height(canvasHeight).Render(canvas)
	if m.showTable {
		mapCol = lipgloss.JoinVertical(lipgloss.Left, mapCol, m.tbl.View())
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapCol)
	} else {
		body = mapCol
	}

	status := dimStyle.Render(" " + m.status + " ")
	if m.mode == modeNormals {
		status += badStyle.Render(fmt.Sprintf(" naive dot %.4f ", m.demo.NaiveDot)) +
			goodStyle.Render(fmt.Sprintf(" inverse-transpose dot %.4f ", m.demo.CorrectDot))
	}
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←→ variant",
		"Space animate",
		"n normals",
		"v vertices",
		"p paste WKT",
		"Tab sidebar",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
