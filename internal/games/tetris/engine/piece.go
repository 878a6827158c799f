package engine

import "fmt"

// Piece is a shape placed in the well. Col and Row anchor the top-left
// corner of the 5x5 mask.
type Piece struct {
	Shape    Shape
	Rotation int
	Col      int
	Row      int
}

// Spawn returns a piece of the given shape at the spawn position,
// horizontally centred with its mask's top row at row 0.
func Spawn(s Shape) Piece {
	return Piece{
		Shape: s,
		Col:   Width/2 - 2,
		Row:   0,
	}
}

// Cells returns the absolute coordinates the piece occupies.
func (p Piece) Cells() []Point {
	local := p.Shape.local(p.Rotation)
	cells := make([]Point, len(local))
	for i, l := range local {
		cells[i] = Point{Col: p.Col + l.Col, Row: p.Row + l.Row}
	}
	return cells
}

// Moved returns a copy shifted by (dc, dr).
func (p Piece) Moved(dc, dr int) Piece {
	p.Col += dc
	p.Row += dr
	return p
}

// Rotated returns a copy advanced to the next rotation state.
func (p Piece) Rotated() Piece {
	n := p.Shape.Rotations()
	if n > 0 {
		p.Rotation = (p.Rotation + 1) % n
	}
	return p
}

func (p Piece) String() string {
	return fmt.Sprintf("%s r%d @(%d,%d)", p.Shape, p.Rotation, p.Col, p.Row)
}
