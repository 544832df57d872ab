package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// model is the render/input loop of the menu: a bubbletea model that redraws
// the grid after every keystroke and quits on confirm or cancel. It is the
// only mutator of the selection; the geometry it renders from is fixed for
// the whole invocation, so a terminal resize does not re-layout the grid.
type model struct {
	title string
	geo   *Geometry
	keys  keyMap

	selected int
	// current is the index marked with currentStyle, or -1.
	current int

	confirmed bool
	cancelled bool
}

func newModel(geo *Geometry, title string, initial, current int) model {
	return model{
		title:    title,
		geo:      geo,
		keys:     defaultKeyMap(),
		selected: initial,
		current:  current,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.selected = m.geo.Move(m.selected, dirUp)
		case key.Matches(msg, m.keys.Down):
			m.selected = m.geo.Move(m.selected, dirDown)
		case key.Matches(msg, m.keys.Left):
			m.selected = m.geo.Move(m.selected, dirLeft)
		case key.Matches(msg, m.keys.Right):
			m.selected = m.geo.Move(m.selected, dirRight)
		}
		// Unbound keys fall through unchanged: the redraw is a no-op
		// refresh.
	}
	return m, nil
}

// View draws the grid row-major from the column-major cell matrix, so the
// reading order on screen runs down each column.
func (m model) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
	}
	for row := 0; row < m.geo.Rows; row++ {
		for col := 0; col < m.geo.Columns; col++ {
			cell, ok := m.geo.cell(col, row)
			if !ok {
				continue
			}
			idx := col*m.geo.Rows + row
			switch {
			case idx == m.selected:
				b.WriteString(selectedStyle.Render(cell))
			case idx == m.current:
				b.WriteString(currentStyle.Render(cell))
			default:
				b.WriteString(cellStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑↓←→ move · enter select · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
