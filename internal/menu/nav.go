package menu

// direction is a navigation input for the selection state machine.
type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// Move returns the next selected index for a directional input. Selection is
// a flat index into the column-major grid, so vertical movement is +/-1 and
// horizontal movement jumps a whole column of Rows entries. Every edge wraps
// to the opposite edge; wrap targets that would land in an empty trailing
// cell of the short last column are clamped to the last populated index.
func (g *Geometry) Move(selected int, dir direction) int {
	col, row := g.colRow(selected)

	switch dir {
	case dirDown:
		if row == g.Rows-1 || selected == g.Total-1 {
			return col * g.Rows
		}
		return selected + 1
	case dirUp:
		if row == 0 {
			return g.clampIndex(col*g.Rows + g.Rows - 1)
		}
		return selected - 1
	case dirRight:
		if col == g.Columns-1 {
			// Same row in column 0, which is always fully populated.
			return row
		}
		return g.clampIndex(selected + g.Rows)
	case dirLeft:
		if col == 0 {
			return g.clampIndex(selected + (g.Columns-1)*g.Rows)
		}
		return selected - g.Rows
	}
	return selected
}
