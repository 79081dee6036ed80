package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"goaffine/internal/geom"
	"goaffine/internal/scene"
)

type tickMsg struct{}

const animStep = 0.03

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-4)
		}

	case tickMsg:
		if !m.animating {
			return m, nil
		}
		m.animT += animStep
		if m.animT >= 1 {
			m.animT = 1
			m.animating = false
			m.status = "animation done"
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		if m.pasteMode {
			return m.updatePaste(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.height-4)
			}
		case "left":
			m.selectVariant(m.sel - 1)
		case "right":
			m.selectVariant(m.sel + 1)
		case " ":
			m.animating = true
			m.animT = 0
			m.status = "animating " + m.current().Label
			return m, tick()
		case "n":
			if m.mode == modeNormals {
				m.mode = modeVariants
				m.status = "transform view"
			} else {
				m.mode = modeNormals
				m.status = "normal-vector view"
			}
		case "v":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
		case "h":
			m.helpVisible = !m.helpVisible
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(variantItem); ok {
					m.selectVariant(it.idx)
				}
			}
		}
	}

	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) selectVariant(idx int) {
	n := len(m.scn.Variants)
	m.sel = ((idx % n) + n) % n
	m.animT = 1
	m.animating = false
	m.status = m.current().Label
	m.l.Select(m.sel)
	if m.showTable {
		m.refreshTable()
	}
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		wkt := strings.TrimSpace(m.ta.Value())
		if wkt == "" {
			m.status = "paste: empty"
			return m, nil
		}
		poly, err := geom.ParsePolygonWKT(wkt)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.scn = scene.FromBase(poly)
		m.sel = 0
		m.animT = 1
		m.refreshVariants()
		m.refreshTable()
		m.pasteMode = false
		m.ta.Blur()
		m.status = fmt.Sprintf("rendered WKT polygon with %d vertices", poly.Len())
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}
