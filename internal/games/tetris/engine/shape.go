// Package engine implements the Tetris board and piece simulation:
// collision-checked placement, rotation states, line clearing and scoring.
// It knows nothing about time, terminals or key presses. The platform drives
// it with Tick (gravity) and Apply (player intents) and reads it through View.
package engine

import "strings"

// MaskSize is the side length of a rotation mask.
const MaskSize = 5

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

// Point is an absolute grid coordinate. Row may be negative while a piece
// is still partly above the well.
type Point struct {
	Col int
	Row int
}

// patterns holds the rotation states of every shape as 5x5 pictures,
// '#' marking an occupied cell. Order matters: rotating advances the index.
var patterns = [ShapeCount][][MaskSize]string{
	ShapeI: {
		{
			".....",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
		},
		{
			".....",
			".....",
			"####.",
			".....",
			".....",
		},
	},
	ShapeO: {
		{
			".....",
			".....",
			".##..",
			".##..",
			".....",
		},
	},
	ShapeT: {
		{
			".....",
			".....",
			".#...",
			"###..",
			".....",
		},
		{
			".....",
			".....",
			".#...",
			".##..",
			".#...",
		},
		{
			".....",
			".....",
			".....",
			"###..",
			".#...",
		},
		{
			".....",
			".....",
			".#...",
			"##...",
			".#...",
		},
	},
	ShapeS: {
		{
			".....",
			".....",
			".##..",
			"##...",
			".....",
		},
		{
			".....",
			".#...",
			".##..",
			"..#..",
			".....",
		},
	},
	ShapeZ: {
		{
			".....",
			".....",
			"##...",
			".##..",
			".....",
		},
		{
			".....",
			"..#..",
			".##..",
			".#...",
			".....",
		},
	},
	ShapeJ: {
		{
			".....",
			".#...",
			".#...",
			"##...",
			".....",
		},
		{
			".....",
			".....",
			"#....",
			"###..",
			".....",
		},
		{
			".....",
			".##..",
			".#...",
			".#...",
			".....",
		},
		{
			".....",
			".....",
			"###..",
			"..#..",
			".....",
		},
	},
	ShapeL: {
		{
			".....",
			"..#..",
			"..#..",
			".##..",
			".....",
		},
		{
			".....",
			".....",
			"###..",
			"#....",
			".....",
		},
		{
			".....",
			"##...",
			".#...",
			".#...",
			".....",
		},
		{
			".....",
			".....",
			"..#..",
			"###..",
			".....",
		},
	},
}

// offsets caches the occupied local cells of every rotation state.
var offsets [ShapeCount][][]Point

func init() {
	for s := range patterns {
		offsets[s] = make([][]Point, len(patterns[s]))
		for r, mask := range patterns[s] {
			for row, line := range mask {
				for col, ch := range line {
					if ch == '#' {
						offsets[s][r] = append(offsets[s][r], Point{Col: col, Row: row})
					}
				}
			}
		}
	}
}

// AllShapes returns every shape in declaration order.
func AllShapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// Rotations returns the number of rotation states for the shape.
func (s Shape) Rotations() int {
	if !s.Valid() {
		return 0
	}
	return len(patterns[s])
}

// Mask returns the occupancy mask for a rotation state.
// The rotation index wraps modulo the shape's state count.
func (s Shape) Mask(rotation int) [MaskSize][MaskSize]bool {
	var mask [MaskSize][MaskSize]bool
	for _, p := range s.local(rotation) {
		mask[p.Row][p.Col] = true
	}
	return mask
}

// local returns the occupied mask cells for a rotation state.
func (s Shape) local(rotation int) []Point {
	if !s.Valid() {
		return nil
	}
	n := len(offsets[s])
	return offsets[s][((rotation%n)+n)%n]
}

// String returns the shape's letter.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// ParseShape maps a letter (case-insensitive) to a shape.
func ParseShape(name string) (Shape, bool) {
	for _, s := range AllShapes() {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return 0, false
}
