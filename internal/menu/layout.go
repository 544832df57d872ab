package menu

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	// defaultMaxColumnWidth is the column width cap used when the caller
	// does not supply one.
	defaultMaxColumnWidth = 20
	// minColumnWidth is the smallest usable column width cap. Below this
	// the truncation arithmetic (width - 4 content columns plus the
	// ellipsis) underflows.
	minColumnWidth = 4
	// fallbackTerminalWidth is assumed when stdout is not a terminal.
	fallbackTerminalWidth = 80

	ellipsis = "..."
)

// Options carries the sizing constraints for one menu invocation.
type Options struct {
	// MaxColumnWidth caps the display width of a single column, including
	// the surrounding spaces. 0 means defaultMaxColumnWidth.
	MaxColumnWidth int
	// Columns fixes the number of grid columns. 0 derives the count from
	// the available terminal width.
	Columns int
	// Width is the available display width used for automatic column
	// sizing. 0 queries the terminal, falling back to 80 columns.
	Width int
	// Initial is the index highlighted when the menu opens. Out-of-range
	// values are clamped to 0.
	Initial int
	// HighlightCurrent marks the Initial entry with a distinct style even
	// when the cursor has moved elsewhere, e.g. the active kube context.
	HighlightCurrent bool
}

// Geometry is the fixed grid shape for one menu invocation. Cells are stored
// column-major: cell (col, row) holds option index col*Rows+row. It is
// computed once per invocation and never mutated afterwards.
type Geometry struct {
	Columns int
	Rows    int
	// Total is the number of selectable options; indices beyond it are
	// empty trailing cells of the last column.
	Total int

	colWidths []int
	// cells holds the padded/truncated display strings, column-major.
	// Truncation is display-only; callers always get original indices.
	cells [][]string
}

// Layout computes the grid geometry and pre-renders every cell.
func Layout(labels []string, opts Options) (*Geometry, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyMenu
	}

	maxWidth := opts.MaxColumnWidth
	if maxWidth == 0 {
		maxWidth = defaultMaxColumnWidth
	}
	if maxWidth < minColumnWidth || opts.Columns < 0 {
		return nil, &ConfigError{MaxColumnWidth: maxWidth, Columns: opts.Columns}
	}

	cols := opts.Columns
	if cols == 0 {
		avail := opts.Width
		if avail <= 0 {
			avail = terminalWidth()
		}
		cols = avail / (maxWidth + 2)
		if cols < 1 {
			cols = 1
		}
	}
	if cols > len(labels) {
		cols = len(labels)
	}
	rows := (len(labels) + cols - 1) / cols
	// Requesting more columns than the row count can fill would leave
	// whole columns empty; shrink to the populated count.
	cols = (len(labels) + rows - 1) / rows

	g := &Geometry{
		Columns:   cols,
		Rows:      rows,
		Total:     len(labels),
		colWidths: make([]int, cols),
		cells:     make([][]string, cols),
	}

	for col := 0; col < cols; col++ {
		width := 0
		for row := 0; row < rows; row++ {
			i := col*rows + row
			if i >= len(labels) {
				break
			}
			if w := runewidth.StringWidth(labels[i]); w > width {
				width = w
			}
		}
		if width > maxWidth-1 {
			width = maxWidth - 1
		}
		g.colWidths[col] = width

		column := make([]string, 0, rows)
		for row := 0; row < rows; row++ {
			i := col*rows + row
			if i >= len(labels) {
				break
			}
			column = append(column, renderCell(labels[i], width, maxWidth))
		}
		g.cells[col] = column
	}

	return g, nil
}

// renderCell truncates or pads one label to the column width and wraps it
// with the single leading/trailing display space.
func renderCell(label string, colWidth, maxWidth int) string {
	if runewidth.StringWidth(label) > maxWidth-2 {
		label = runewidth.Truncate(label, maxWidth-4, "") + ellipsis
	}
	return " " + runewidth.FillRight(label, colWidth) + " "
}

// colRow converts a flat option index into its (col, row) grid position.
func (g *Geometry) colRow(i int) (col, row int) {
	return i / g.Rows, i % g.Rows
}

// cell returns the rendered string for (col, row), or false for an empty
// trailing cell.
func (g *Geometry) cell(col, row int) (string, bool) {
	if col >= g.Columns || row >= len(g.cells[col]) {
		return "", false
	}
	return g.cells[col][row], true
}

// clampIndex pulls an index that landed past the last option back onto it.
func (g *Geometry) clampIndex(i int) int {
	if i > g.Total-1 {
		return g.Total - 1
	}
	return i
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackTerminalWidth
}
