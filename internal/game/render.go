package game

import (
	"fmt"

	"github.com/vovakirdan/hexalines/internal/core"
	"github.com/vovakirdan/hexalines/internal/hexboard"
)

// Board layout: cells are 4 columns apart with a 2-column shear per row,
// which draws the hexagon as a hexagon.
const (
	cellSpacingX     = 4
	rowShearX        = 2
	hudHeight        = 3
	boardPixelWidth  = (hexboard.GridSize-1)*cellSpacingX + 1
	boardPixelHeight = hexboard.GridSize
)

const (
	tokenRune  = '●'
	jokerRune  = '★'
	emptyRune  = '·'
	previewDot = '●'
)

// tokenColor maps an engine color to a terminal color.
func tokenColor(c hexboard.Color) core.Color {
	switch c {
	case hexboard.ColorRed:
		return core.ColorRed
	case hexboard.ColorGreen:
		return core.ColorGreen
	case hexboard.ColorBlue:
		return core.ColorBrightBlue
	case hexboard.ColorYellow:
		return core.ColorYellow
	case hexboard.ColorMagenta:
		return core.ColorMagenta
	case hexboard.ColorCyan:
		return core.ColorCyan
	case hexboard.Joker:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}

// cellScreenPos converts a board position to screen coordinates.
func (g *Game) cellScreenPos(p hexboard.Pos) (int, int) {
	offsetX := (g.screenW - boardPixelWidth) / 2
	offsetY := hudHeight + (g.screenH-hudHeight-boardPixelHeight)/2
	x := offsetX + p.Col*cellSpacingX + (p.Row-hexboard.HexRadius)*rowShearX
	y := offsetY + p.Row
	return x, y
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	// The platform may resize its buffer without resetting a finished game;
	// follow the target size so layout and the size check stay current.
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.screenW = dst.Width()
		g.screenH = dst.Height()
		g.checkScreenSize()
	}

	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderMovingToken(dst)
	g.renderCursor(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar with score, moves, combo and the
// preview of upcoming spawn colors.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Moves: %d", g.Title(), g.score, g.moveCount)
	if g.comboStreak > 1 {
		hud += fmt.Sprintf("  Combo: x%d", g.comboStreak)
	}
	dst.DrawText(0, 0, hud)

	// Upcoming spawns, right-aligned.
	label := "Next: "
	previewW := len(label) + len(g.preview)*2
	x := dst.Width() - previewW - 1
	if x > len(hud) {
		dst.DrawText(x, 0, label)
		x += len(label)
		for _, c := range g.preview {
			r := previewDot
			if c == hexboard.Joker {
				r = jokerRune
			}
			dst.SetCell(x, 0, r, tokenColor(c))
			x += 2
		}
	}

	if g.noPathTicks > 0 {
		dst.DrawTextColored(1, 1, "No path to that cell", core.ColorBrightRed)
	}

	dst.DrawHLine(0, hudHeight-1, dst.Width(), '─')
}

// renderBoard draws every valid cell: empty dots, tokens, and the blinking
// removal set during the clearing phase.
func (g *Game) renderBoard(dst *core.Screen) {
	blinkOff := g.phase == phaseClearing && (g.phaseTicks/6)%2 == 1
	clearing := make(map[hexboard.Pos]bool, len(g.clearing))
	for _, p := range g.clearing {
		clearing[p] = true
	}
	fresh := make(map[hexboard.Pos]bool, len(g.spawned))
	for _, p := range g.spawned {
		fresh[p] = true
	}

	for _, p := range hexboard.AllPositions() {
		x, y := g.cellScreenPos(p)
		cell := g.grid.At(p)

		switch {
		case cell.Kind == hexboard.KindEmpty:
			dst.SetCell(x, y, emptyRune, core.ColorGray)
		case clearing[p] && blinkOff:
			dst.SetCell(x, y, emptyRune, core.ColorGray)
		case cell.IsJoker():
			dst.SetCell(x, y, jokerRune, tokenColor(hexboard.Joker))
		default:
			r := tokenRune
			if fresh[p] && (g.phaseTicks/3)%2 == 0 {
				r = '◌' // spawn flash
			}
			dst.SetCell(x, y, r, tokenColor(cell.Color))
		}
	}
}

// renderMovingToken draws the token travelling along its path.
func (g *Game) renderMovingToken(dst *core.Screen) {
	if g.phase != phaseMoving {
		return
	}
	x, y := g.cellScreenPos(g.movingAt)
	r := tokenRune
	if g.movingColor == hexboard.Joker {
		r = jokerRune
	}
	dst.SetCell(x, y, r, tokenColor(g.movingColor))
}

// renderCursor brackets the cursor cell; the selected token gets underscores.
func (g *Game) renderCursor(dst *core.Screen) {
	if g.phase != phaseSelecting {
		return
	}

	if g.hasSelected {
		sx, sy := g.cellScreenPos(g.selected)
		dst.SetCell(sx-1, sy, '(', core.ColorBrightYellow)
		dst.SetCell(sx+1, sy, ')', core.ColorBrightYellow)
	}

	x, y := g.cellScreenPos(g.cursor)
	dst.SetCell(x-1, y, '[', core.ColorBrightWhite)
	dst.SetCell(x+1, y, ']', core.ColorBrightWhite)
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
