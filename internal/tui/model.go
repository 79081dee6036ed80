// Package tui is an interactive terminal viewer for the transform
// scene. Polygons are drawn on a braille microgrid canvas; a sidebar
// lists the transform variants, a table inspects vertices, and paste
// mode accepts a WKT polygon to replace the base shape.
package tui

import (
	"strconv"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"goaffine/internal/scene"
)

type mode int

const (
	modeVariants mode = iota
	modeNormals
)

type Model struct {
	width  int
	height int

	scn  scene.Scene
	demo scene.NormalDemo
	sel  int // selected variant index

	mode        mode
	showSidebar bool
	showTable   bool
	helpVisible bool
	status      string

	// animation base -> variant, progress in [0, 1]
	animating bool
	animT     float64

	// variant sidebar
	l list.Model

	// vertex inspector
	tbl table.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model
}

// variant list entries
type variantItem struct {
	label string
	color string
	idx   int
}

func (v variantItem) Title() string       { return v.label }
func (v variantItem) Description() string { return v.color }
func (v variantItem) FilterValue() string { return v.label }

func New(scn scene.Scene, demo scene.NormalDemo) Model {
	m := Model{
		scn:         scn,
		demo:        demo,
		animT:       1, // show the finished transform until animated
		showSidebar: true,
		helpVisible: true,
		status:      "goaffine ready",
	}

	// sidebar list
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Transforms"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	m.refreshVariants()

	// vertex table
	m.tbl = table.New(table.WithFocused(false))
	m.refreshTable()

	// paste mode textarea
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a WKT polygon, e.g. POLYGON((1 1, 4 1, 3 3, 1 4)). Enter renders it; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(4)

	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) refreshVariants() {
	items := make([]list.Item, len(m.scn.Variants))
	for i, v := range m.scn.Variants {
		items[i] = variantItem{label: v.Label, color: v.Color, idx: i}
	}
	m.l.SetItems(items)
}

func (m Model) current() scene.Variant {
	return m.scn.Variants[m.sel]
}

func (m *Model) refreshTable() {
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "base", Width: 20},
		{Title: m.current().Label, Width: 26},
	}
	basePts := m.scn.Base.Points()
	varPts := m.current().Poly.Points()
	rows := make([]table.Row, len(basePts))
	for i := range basePts {
		rows[i] = table.Row{strconv.Itoa(i), basePts[i].String(), varPts[i].String()}
	}
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(len(rows) + 1)
}
