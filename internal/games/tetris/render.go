package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth = 2                         // Screen columns per well cell
	wellW     = engine.Width*cellWidth + 2 // Including borders
	wellH     = engine.Height + 2
	panelGap  = 2
	panelW    = engine.MaskSize*cellWidth + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW := wellW + panelGap + panelW
	wellX := (g.screenW - totalW) / 2
	wellY := (g.screenH - wellH) / 2
	view := g.eng.View()

	g.renderWell(dst, view, wellX, wellY)
	g.renderPanel(dst, view, wellX+wellW+panelGap, wellY)
	g.renderOverlays(dst, view, wellX, wellY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderWell draws the border, the locked cells and the falling piece.
func (g *Game) renderWell(dst *core.Screen, v engine.View, x, y int) {
	dst.DrawBoxColored(core.NewRect(x, y, wellW, wellH), g.theme.BorderColor())

	for row := range engine.Height {
		for col := range engine.Width {
			glyph := g.theme.Empty
			if v.Grid[row][col] == engine.Locked {
				glyph = g.theme.Locked
			}
			dst.DrawText(x+1+col*cellWidth, y+1+row, glyph)
		}
	}

	if v.GameOver {
		return
	}
	color := g.theme.PieceColor(v.Active.Shape)
	visible := core.NewRect(0, 0, engine.Width, engine.Height)
	for _, c := range v.Cells {
		if !visible.Contains(c.Col, c.Row) {
			continue
		}
		dst.DrawTextColored(x+1+c.Col*cellWidth, y+1+c.Row, g.theme.Falling, color)
	}
}

// renderPanel draws score, lines, level, the next piece and key hints.
func (g *Game) renderPanel(dst *core.Screen, v engine.View, x, y int) {
	dst.DrawTextColored(x, y, "TETRIS", core.ColorBrightCyan)

	stats := []struct {
		label string
		value int
	}{
		{"Score", v.Score},
		{"Lines", v.Lines},
		{"Level", v.Level},
	}
	row := y + 2
	for _, s := range stats {
		dst.DrawTextColored(x, row, s.label, core.ColorGray)
		dst.DrawText(x, row+1, fmt.Sprintf("%d", s.value))
		row += 3
	}

	dst.DrawTextColored(x, row, "Next", core.ColorGray)
	box := core.NewRect(x, row+1, panelW, engine.MaskSize+2)
	dst.DrawBoxColored(box, g.theme.BorderColor())
	mask := v.Next.Shape.Mask(0)
	color := g.theme.PieceColor(v.Next.Shape)
	for r := range engine.MaskSize {
		for c := range engine.MaskSize {
			if mask[r][c] {
				dst.DrawTextColored(box.X+1+c*cellWidth, box.Y+1+r, g.theme.Locked, color)
			}
		}
	}

	row = box.Bottom() + 1
	dst.DrawTextColored(x, row, "P pause", core.ColorGray)
	dst.DrawTextColored(x, row+1, "Esc quit", core.ColorGray)
}

// renderOverlays draws pause and game over messages over the well.
func (g *Game) renderOverlays(dst *core.Screen, v engine.View, wellX, wellY int) {
	var lines []string
	var color core.Color

	switch {
	case v.GameOver:
		color = core.ColorBrightRed
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", v.Score),
			fmt.Sprintf("Lines: %d", v.Lines),
			fmt.Sprintf("Level: %d", v.Level),
			"",
			"R restart",
			"B back",
		}
	case g.paused:
		color = core.ColorBrightYellow
		lines = []string{"PAUSED", "", "P to resume"}
	default:
		return
	}

	boxW := wellW - 4
	boxH := len(lines) + 2
	box := core.NewRect(wellX+2, wellY+(wellH-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)
	for i, line := range lines {
		lx := box.X + (box.W-utf8.RuneCountInString(line))/2
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(lx, box.Y+1+i, line, c)
	}
}
