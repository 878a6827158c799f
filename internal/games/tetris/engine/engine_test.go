package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed)))
}

func TestCellsMatchMask(t *testing.T) {
	for _, s := range AllShapes() {
		for r := 0; r < s.Rotations(); r++ {
			p := Piece{Shape: s, Rotation: r, Col: 2, Row: -1}
			mask := s.Mask(r)

			want := map[Point]bool{}
			for row := 0; row < MaskSize; row++ {
				for col := 0; col < MaskSize; col++ {
					if mask[row][col] {
						want[Point{Col: 2 + col, Row: -1 + row}] = true
					}
				}
			}

			got := map[Point]bool{}
			for _, c := range p.Cells() {
				got[c] = true
			}
			assert.Equal(t, want, got, "shape %s rotation %d", s, r)
			assert.Len(t, p.Cells(), 4, "shape %s rotation %d", s, r)
		}
	}
}

func TestRotationCounts(t *testing.T) {
	want := map[Shape]int{
		ShapeI: 2, ShapeO: 1, ShapeT: 4, ShapeS: 2,
		ShapeZ: 2, ShapeJ: 4, ShapeL: 4,
	}
	for s, n := range want {
		assert.Equal(t, n, s.Rotations(), "shape %s", s)
	}
	assert.Equal(t, 0, Shape(42).Rotations())
}

func TestSpawnPosition(t *testing.T) {
	p := Spawn(ShapeT)
	assert.Equal(t, Width/2-2, p.Col)
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, 0, p.Rotation)
}

func TestIsValidBounds(t *testing.T) {
	e := newTestEngine(1)

	// Vertical I occupies mask column 2, rows 1..4.
	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"centred", Piece{Shape: ShapeI, Col: 3, Row: 0}, true},
		{"left wall", Piece{Shape: ShapeI, Col: -2, Row: 0}, true},
		{"past left wall", Piece{Shape: ShapeI, Col: -3, Row: 0}, false},
		{"right wall", Piece{Shape: ShapeI, Col: Width - 3, Row: 0}, true},
		{"past right wall", Piece{Shape: ShapeI, Col: Width - 2, Row: 0}, false},
		{"on floor", Piece{Shape: ShapeI, Col: 3, Row: Height - 5}, true},
		{"through floor", Piece{Shape: ShapeI, Col: 3, Row: Height - 4}, false},
		{"above top", Piece{Shape: ShapeI, Col: 3, Row: -4}, true},
		{"far above top", Piece{Shape: ShapeI, Col: 3, Row: -50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsValid(tt.piece))
		})
	}
}

func TestIsValidOverlap(t *testing.T) {
	e := newTestEngine(1)
	var g Grid
	g.Set(5, 10, Locked)
	e.SetGrid(g)

	assert.False(t, e.IsValid(Piece{Shape: ShapeI, Col: 3, Row: 7}), "overlaps locked cell")
	assert.True(t, e.IsValid(Piece{Shape: ShapeI, Col: 3, Row: 5}), "rests on locked cell")
	assert.True(t, e.IsValid(Piece{Shape: ShapeI, Col: 4, Row: 7}), "beside locked cell")
}

func TestIsValidIgnoresHiddenRows(t *testing.T) {
	e := newTestEngine(1)
	var g Grid
	for col := 0; col < Width; col++ {
		g.Set(col, 0, Locked)
	}
	e.SetGrid(g)

	// Cells at rows -3..0: only row 0 is checked against the grid.
	assert.False(t, e.IsValid(Piece{Shape: ShapeI, Col: 3, Row: -4}))
	assert.True(t, e.IsValid(Piece{Shape: ShapeI, Col: 3, Row: -5}))
}

func TestLockSkipsHiddenCells(t *testing.T) {
	e := newTestEngine(1)
	// Rows -3..0: only the cell in row 0 is committed.
	e.Lock(Piece{Shape: ShapeI, Col: 3, Row: -4})

	g := e.Grid()
	assert.Equal(t, 1, g.LockedCount())
	assert.Equal(t, Locked, g.At(5, 0))
	assert.Equal(t, 1, e.Pieces())
}

func TestClearLinesNoFullRows(t *testing.T) {
	e := newTestEngine(1)
	g, err := ParseGrid([]string{
		"#########.",
		".#########",
		"#.#.#.#.#.",
	})
	require.NoError(t, err)
	e.SetGrid(g)

	assert.Equal(t, 0, e.ClearLines())
	assert.Equal(t, g, e.Grid())
}

func TestClearLinesPreservesOrder(t *testing.T) {
	e := newTestEngine(1)

	// Every non-full row gets a marker pattern unique to that row.
	var g Grid
	for row := 0; row < Height; row++ {
		if row == 3 || row == 7 {
			for col := 0; col < Width; col++ {
				g.Set(col, row, Locked)
			}
			continue
		}
		g.Set(row%Width, row, Locked)
		if row >= Width {
			g.Set((row+3)%Width, row, Locked)
		}
	}
	e.SetGrid(g)

	require.Equal(t, []int{3, 7}, g.FullRows())
	require.Equal(t, 2, e.ClearLines())

	got := e.Grid()
	var empty [Width]Cell
	assert.Equal(t, empty, got[0])
	assert.Equal(t, empty, got[1])

	var kept [][Width]Cell
	for row := 0; row < Height; row++ {
		if row != 3 && row != 7 {
			kept = append(kept, g[row])
		}
	}
	require.Len(t, kept, 18)
	for i, row := range kept {
		assert.Equal(t, row, got[i+2], "row %d", i+2)
	}
}

func TestScoreLinesAwardTable(t *testing.T) {
	e := newTestEngine(1)
	require.Equal(t, 1, e.Level())

	assert.Equal(t, 0, e.ScoreLines(0))
	assert.Equal(t, 0, e.Score())

	assert.Equal(t, 100, e.ScoreLines(1))
	assert.Equal(t, 300, e.ScoreLines(2))
	assert.Equal(t, 500, e.ScoreLines(3))
	assert.Equal(t, 800, e.ScoreLines(4))

	assert.Equal(t, 10, e.Lines())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 1700, e.Score())

	assert.Equal(t, 200, e.ScoreLines(1))
	assert.Equal(t, 1900, e.Score())
}

func TestScoreLinesUsesLevelBeforeClear(t *testing.T) {
	e := newTestEngine(1)
	for i := 0; i < 9; i++ {
		e.ScoreLines(1)
	}
	require.Equal(t, 1, e.Level())

	assert.Equal(t, 800, e.ScoreLines(4))
	assert.Equal(t, 13, e.Lines())
	assert.Equal(t, 2, e.Level())
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(9))
	assert.Equal(t, 2, LevelFor(10))
	assert.Equal(t, 4, LevelFor(35))
}

func TestRotateCycles(t *testing.T) {
	e := newTestEngine(1)
	for _, s := range AllShapes() {
		start := Spawn(s).Moved(0, 5)
		e.SetPieces(start, Spawn(ShapeO))

		n := s.Rotations()
		if s == ShapeO {
			n = 3
		}
		for i := 0; i < n; i++ {
			e.Apply(IntentRotate)
		}
		assert.Equal(t, start, e.Active(), "shape %s", s)
	}
}

func TestMoveLeftRight(t *testing.T) {
	e := newTestEngine(1)
	start := Spawn(ShapeT).Moved(0, 5)
	e.SetPieces(start, Spawn(ShapeO))

	require.True(t, e.Apply(IntentMoveLeft))
	assert.Equal(t, start.Col-1, e.Active().Col)
	require.True(t, e.Apply(IntentMoveRight))
	assert.Equal(t, start, e.Active())
}

func TestApplyRejectsSilently(t *testing.T) {
	e := newTestEngine(1)
	// Vertical I against the left wall.
	start := Piece{Shape: ShapeI, Col: -2, Row: 3}
	e.SetPieces(start, Spawn(ShapeO))

	assert.False(t, e.Apply(IntentMoveLeft))
	assert.Equal(t, start, e.Active())

	// Rotating to horizontal would push cells through the wall.
	assert.False(t, e.Apply(IntentRotate))
	assert.Equal(t, start, e.Active())

	assert.False(t, e.Apply(IntentNone))
	assert.False(t, e.Apply(IntentQuit))
	assert.False(t, e.GameOver())
}

func TestApplyAllCoalescesDuplicates(t *testing.T) {
	e := newTestEngine(1)
	start := Spawn(ShapeT).Moved(0, 5)
	e.SetPieces(start, Spawn(ShapeO))

	moved := e.ApplyAll([]Intent{IntentMoveLeft, IntentMoveLeft, IntentMoveLeft, IntentSoftDrop, IntentSoftDrop})
	assert.Equal(t, 2, moved)
	assert.Equal(t, start.Moved(-1, 1), e.Active())
}

func TestApplyAllArrivalOrder(t *testing.T) {
	e := newTestEngine(1)
	// Vertical I in column 2. Whichever of left and rotate comes first
	// succeeds and blocks the other.
	start := Piece{Shape: ShapeI, Col: 0, Row: 5}

	e.SetPieces(start, Spawn(ShapeO))
	assert.Equal(t, 1, e.ApplyAll([]Intent{IntentMoveLeft, IntentRotate}))
	assert.Equal(t, Piece{Shape: ShapeI, Col: -1, Row: 5}, e.Active())

	e.SetPieces(start, Spawn(ShapeO))
	assert.Equal(t, 1, e.ApplyAll([]Intent{IntentRotate, IntentMoveLeft}))
	assert.Equal(t, Piece{Shape: ShapeI, Rotation: 1, Col: 0, Row: 5}, e.Active())
}

func TestApplyAllQuit(t *testing.T) {
	e := newTestEngine(1)
	start := e.Active()
	e.ApplyAll([]Intent{IntentQuit, IntentSoftDrop})

	assert.True(t, e.GameOver())
	assert.Equal(t, start, e.Active())
}

func TestTickFalls(t *testing.T) {
	e := newTestEngine(1)
	start := e.Active()

	res := e.Tick()
	assert.True(t, res.Moved)
	assert.False(t, res.Locked)
	assert.Equal(t, start.Moved(0, 1), e.Active())
}

func TestTickLocksAndPromotes(t *testing.T) {
	e := newTestEngine(7)
	// O occupies mask rows 2..3; Row 15 puts it one row above the floor.
	resting := Piece{Shape: ShapeO, Col: 0, Row: 15}
	next := Spawn(ShapeT)
	e.SetPieces(resting, next)

	res := e.Tick()
	require.True(t, res.Moved)

	res = e.Tick()
	require.True(t, res.Locked)
	assert.Equal(t, resting.Moved(0, 1), res.Piece)
	assert.Equal(t, 0, res.Cleared)
	assert.False(t, res.GameOver)

	g := e.Grid()
	assert.Equal(t, 4, g.LockedCount())
	assert.Equal(t, Locked, g.At(1, 18))
	assert.Equal(t, Locked, g.At(2, 19))

	assert.Equal(t, next, e.Active())
	assert.Equal(t, Spawn(e.Next().Shape), e.Next())
	assert.Equal(t, 1, e.Pieces())
}

func TestTickClearsAndScores(t *testing.T) {
	e := newTestEngine(1)
	g, err := ParseGrid([]string{
		"####..####",
		"####..####",
	})
	require.NoError(t, err)
	e.SetGrid(g)
	e.SetPieces(Piece{Shape: ShapeO, Col: 3, Row: 16}, Spawn(ShapeI))

	res := e.Tick()
	require.True(t, res.Locked)
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 300, res.Points)
	assert.Equal(t, 300, e.Score())
	assert.Equal(t, 2, e.Lines())

	cleared := e.Grid()
	assert.Equal(t, 0, cleared.LockedCount())
}

func TestTickGameOverOnBlockedSpawn(t *testing.T) {
	e := newTestEngine(1)
	var g Grid
	// Block the spawn cells of an O piece without filling a row.
	g.Set(4, 3, Locked)
	g.Set(5, 3, Locked)
	e.SetGrid(g)
	e.SetPieces(Piece{Shape: ShapeO, Col: -1, Row: 16}, Spawn(ShapeO))

	res := e.Tick()
	require.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.True(t, e.GameOver())

	after := e.Grid()
	assert.Equal(t, 6, after.LockedCount(), "promoted piece must not lock")
	assert.Equal(t, Empty, after.At(4, 2))

	// Terminal state: nothing mutates any more.
	active := e.Active()
	assert.False(t, e.Apply(IntentMoveLeft))
	assert.Equal(t, TickResult{GameOver: true}, e.Tick())
	assert.Equal(t, active, e.Active())
	assert.Equal(t, after, e.Grid())
}

func TestQuitIsTerminal(t *testing.T) {
	e := newTestEngine(1)
	g := e.Grid()
	e.Quit()

	assert.True(t, e.GameOver())
	assert.Equal(t, TickResult{GameOver: true}, e.Tick())
	assert.Equal(t, 0, e.ApplyAll([]Intent{IntentMoveLeft, IntentRotate}))
	assert.Equal(t, g, e.Grid())
}

func TestFallInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 800 * time.Millisecond},
		{2, 700 * time.Millisecond},
		{5, 400 * time.Millisecond},
		{8, 100 * time.Millisecond},
		{15, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FallInterval(tt.level), "level %d", tt.level)
	}

	e := newTestEngine(1)
	assert.Equal(t, 800*time.Millisecond, e.FallInterval())
}

func TestViewIsCopy(t *testing.T) {
	e := newTestEngine(1)
	v := e.View()
	v.Grid.Set(0, 0, Locked)
	v.Cells[0] = Point{Col: 99, Row: 99}

	g := e.Grid()
	assert.Equal(t, Empty, g.At(0, 0))
	assert.NotEqual(t, Point{Col: 99, Row: 99}, e.View().Cells[0])
	assert.Equal(t, e.Active(), v.Active)
	assert.Equal(t, 1, v.Level)
}

func TestDeterministicPieceSequence(t *testing.T) {
	a := newTestEngine(42)
	b := newTestEngine(42)
	for i := 0; i < 500 && !a.GameOver(); i++ {
		ra := a.Tick()
		rb := b.Tick()
		require.Equal(t, ra, rb, "tick %d", i)
	}
	assert.Equal(t, a.View(), b.View())
}

func TestPiecesStayInsideWell(t *testing.T) {
	e := newTestEngine(3)
	intents := []Intent{IntentMoveLeft, IntentRotate, IntentMoveRight, IntentSoftDrop}
	for i := 0; i < 2000 && !e.GameOver(); i++ {
		e.Apply(intents[i%len(intents)])
		e.Tick()
		for _, c := range e.Active().Cells() {
			require.True(t, c.Col >= 0 && c.Col < Width && c.Row < Height, "cell %v out of well", c)
		}
	}
}
