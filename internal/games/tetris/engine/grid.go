package engine

import (
	"fmt"
	"strings"
)

// Well dimensions. They are fixed for the lifetime of the program.
const (
	Width  = 10
	Height = 20
)

// Cell is the state of one grid square.
type Cell uint8

const (
	Empty Cell = iota
	Locked
)

// Grid is the well, indexed [row][col] with row 0 at the top.
// Being an array, a Grid copies by value, which is what View relies on.
type Grid [Height][Width]Cell

// InBounds reports whether (col, row) lies inside the visible well.
func InBounds(col, row int) bool {
	return col >= 0 && col < Width && row >= 0 && row < Height
}

// At returns the cell at (col, row). Out-of-bounds positions read as Empty.
func (g *Grid) At(col, row int) Cell {
	if !InBounds(col, row) {
		return Empty
	}
	return g[row][col]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(col, row int, c Cell) {
	if !InBounds(col, row) {
		return
	}
	g[row][col] = c
}

// RowFull reports whether every cell in the row is Locked.
func (g *Grid) RowFull(row int) bool {
	if row < 0 || row >= Height {
		return false
	}
	for _, c := range g[row] {
		if c != Locked {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for row := 0; row < Height; row++ {
		if g.RowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearLines removes every full row and shifts the rows above it down,
// filling the top with empty rows. Returns the number of rows removed.
func (g *Grid) ClearLines() int {
	cleared := 0
	write := Height - 1
	for row := Height - 1; row >= 0; row-- {
		if g.RowFull(row) {
			cleared++
			continue
		}
		g[write] = g[row]
		write--
	}
	for ; write >= 0; write-- {
		g[write] = [Width]Cell{}
	}
	return cleared
}

// LockedCount returns the number of Locked cells.
func (g *Grid) LockedCount() int {
	n := 0
	for row := range g {
		for _, c := range g[row] {
			if c == Locked {
				n++
			}
		}
	}
	return n
}

// String renders the grid as rows of '#' (locked) and '.' (empty).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for row := range g {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g[row] {
			if c == Locked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from a picture of '#' and '.' rows.
// Fewer than Height rows are aligned to the bottom of the well.
func ParseGrid(rows []string) (Grid, error) {
	var g Grid
	if len(rows) > Height {
		return g, fmt.Errorf("engine: grid has %d rows, max %d", len(rows), Height)
	}
	offset := Height - len(rows)
	for i, line := range rows {
		if len(line) != Width {
			return g, fmt.Errorf("engine: row %d has width %d, want %d", i, len(line), Width)
		}
		for col, ch := range line {
			switch ch {
			case '#':
				g[offset+i][col] = Locked
			case '.':
			default:
				return g, fmt.Errorf("engine: row %d: invalid cell %q", i, ch)
			}
		}
	}
	return g, nil
}
