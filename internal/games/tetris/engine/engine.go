package engine

import (
	"math/rand"
	"time"
)

// lineAward maps the number of rows cleared at once to base points.
// At most four rows can fill simultaneously.
var lineAward = [...]int{1: 100, 2: 300, 3: 500, 4: 800}

// LinesPerLevel is how many cleared rows advance the level by one.
const LinesPerLevel = 10

// Fall-speed hint bounds.
const (
	baseFallInterval = 800 * time.Millisecond
	fallStep         = 100 * time.Millisecond
	minFallInterval  = 100 * time.Millisecond
)

// TickResult describes what a gravity step did.
type TickResult struct {
	Moved    bool  // Active piece fell one row
	Locked   bool  // Active piece was committed to the grid
	Piece    Piece // The piece that locked (valid when Locked)
	Cleared  int   // Rows removed by this lock
	Points   int   // Points awarded for those rows
	LevelUp  bool  // Level increased
	GameOver bool  // The promoted piece could not be placed
}

// View is a read-only snapshot of the engine. It shares no memory with
// the engine, so it may be rendered while the engine keeps running.
type View struct {
	Grid     Grid
	Active   Piece
	Cells    []Point
	Next     Piece
	Score    int
	Lines    int
	Level    int
	Pieces   int
	GameOver bool
}

// Engine owns the well, the active and next pieces, and scoring state.
// It is not safe for concurrent use; one goroutine drives it.
type Engine struct {
	rng    *rand.Rand
	grid   Grid
	active Piece
	next   Piece
	score  int
	lines  int
	level  int
	pieces int // pieces locked so far
	over   bool
}

// New creates an engine with an empty well. The RNG picks shapes, so a
// seeded RNG yields a reproducible game.
func New(rng *rand.Rand) *Engine {
	e := &Engine{
		rng:   rng,
		level: 1,
	}
	e.active = e.randomPiece()
	e.next = e.randomPiece()
	return e
}

// randomPiece draws a shape uniformly at random.
func (e *Engine) randomPiece() Piece {
	return Spawn(Shape(e.rng.Intn(ShapeCount)))
}

// IsValid reports whether the piece fits: every cell inside the side walls,
// above the floor, and not overlapping a Locked cell. Cells above the top
// of the well are allowed.
func (e *Engine) IsValid(p Piece) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= Width || c.Row >= Height {
			return false
		}
		if c.Row >= 0 && e.grid[c.Row][c.Col] != Empty {
			return false
		}
	}
	return true
}

// Lock commits the piece's visible cells to the grid.
func (e *Engine) Lock(p Piece) {
	for _, c := range p.Cells() {
		e.grid.Set(c.Col, c.Row, Locked)
	}
	e.pieces++
}

// ClearLines removes full rows and returns how many were removed.
// Scoring is separate; see ScoreLines.
func (e *Engine) ClearLines() int {
	return e.grid.ClearLines()
}

// ScoreLines credits a clear of count rows and returns the points awarded.
// Points use the level in effect before the clear; the level is then
// recomputed from the new line total. A count of zero awards nothing.
func (e *Engine) ScoreLines(count int) int {
	if count <= 0 {
		return 0
	}
	if count >= len(lineAward) {
		count = len(lineAward) - 1
	}
	points := lineAward[count] * e.level
	e.lines += count
	e.score += points
	e.level = LevelFor(e.lines)
	return points
}

// LevelFor returns the level reached after clearing the given number of lines.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}

// Apply tries one movement intent on the active piece. An invalid result
// leaves the piece where it was. Returns true if the piece changed.
// Quit is not a placement intent; use Quit.
func (e *Engine) Apply(in Intent) bool {
	if e.over {
		return false
	}
	candidate, ok := in.candidate(e.active)
	if !ok || !e.IsValid(candidate) {
		return false
	}
	e.active = candidate
	return true
}

// ApplyAll applies intents in order, at most once per distinct kind.
// IntentQuit ends the game. Returns the number of intents that moved the
// piece.
func (e *Engine) ApplyAll(intents []Intent) int {
	var seen [IntentQuit + 1]bool
	moved := 0
	for _, in := range intents {
		if in < 0 || in > IntentQuit || seen[in] {
			continue
		}
		seen[in] = true
		if in == IntentQuit {
			e.Quit()
			continue
		}
		if e.Apply(in) {
			moved++
		}
	}
	return moved
}

// Tick runs one gravity step. If the piece cannot fall it is locked, full
// rows are cleared and scored, and the next piece is promoted. If the
// promoted piece does not fit, the game ends and that piece is not locked.
func (e *Engine) Tick() TickResult {
	if e.over {
		return TickResult{GameOver: true}
	}

	if dropped := e.active.Moved(0, 1); e.IsValid(dropped) {
		e.active = dropped
		return TickResult{Moved: true}
	}

	res := TickResult{Locked: true, Piece: e.active}
	e.Lock(e.active)

	levelBefore := e.level
	if n := e.ClearLines(); n > 0 {
		res.Cleared = n
		res.Points = e.ScoreLines(n)
		res.LevelUp = e.level > levelBefore
	}

	e.active = e.next
	e.next = e.randomPiece()

	if !e.IsValid(e.active) {
		e.over = true
		res.GameOver = true
	}
	return res
}

// FallInterval is the advisory gravity period for the current level.
// The engine does not enforce it.
func (e *Engine) FallInterval() time.Duration {
	return FallInterval(e.level)
}

// FallInterval returns max(0.1s, 0.8s - (level-1)*0.1s).
func FallInterval(level int) time.Duration {
	interval := baseFallInterval - time.Duration(level-1)*fallStep
	if interval < minFallInterval {
		return minFallInterval
	}
	return interval
}

// Quit ends the game immediately.
func (e *Engine) Quit() {
	e.over = true
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.over }

// Active returns the falling piece.
func (e *Engine) Active() Piece { return e.active }

// Next returns the piece that spawns after the active one locks.
func (e *Engine) Next() Piece { return e.next }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Pieces returns how many pieces have locked.
func (e *Engine) Pieces() int { return e.pieces }

// Grid returns a copy of the well.
func (e *Engine) Grid() Grid { return e.grid }

// View returns a snapshot of the full engine state.
func (e *Engine) View() View {
	return View{
		Grid:     e.grid,
		Active:   e.active,
		Cells:    e.active.Cells(),
		Next:     e.next,
		Score:    e.score,
		Lines:    e.lines,
		Level:    e.level,
		Pieces:   e.pieces,
		GameOver: e.over,
	}
}

// SetGrid replaces the well contents. Used to set up scripted positions.
func (e *Engine) SetGrid(g Grid) {
	e.grid = g
}

// SetPieces replaces the active and next pieces.
func (e *Engine) SetPieces(active, next Piece) {
	e.active = active
	e.next = next
}
