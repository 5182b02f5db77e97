package tictactoe

import (
	"fmt"

	"github.com/miniarcade/arcade-hub/internal/core"
)

// Cell geometry: each board cell is drawn cellW x cellH screen cells.
const (
	cellW = 7
	cellH = 3
)

// Render draws the grid, marks and cursor.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.phase == core.PhaseMenu {
		renderOverlay(dst, "T I C - T A C - T O E", "Press Enter to start")
		return
	}

	boardW := cellW*3 + 4 // three cells plus grid lines
	boardH := cellH*3 + 4
	originX := (dst.Width() - boardW) / 2
	originY := (dst.Height()-boardH)/2 + 1

	g.drawGrid(dst, originX, originY)

	for i, m := range g.board {
		if m == Empty {
			continue
		}
		cx, cy := g.cellCenter(originX, originY, i)
		color := core.ColorBrightGreen
		if m == CPUMark {
			color = core.ColorBrightRed
		}
		dst.SetColored(cx, cy, rune(m.String()[0]), color)
	}

	// Cursor brackets around the selected cell on the player's turn.
	if g.phase == core.PhasePlaying && g.playerTurn {
		cx, cy := g.cellCenter(originX, originY, g.cursor)
		dst.SetColored(cx-2, cy, '[', core.ColorBrightYellow)
		dst.SetColored(cx+2, cy, ']', core.ColorBrightYellow)
	}

	if g.phase == core.PhasePlaying && !g.playerTurn {
		dst.DrawTextCentered(originY+boardH+1, "CPU is thinking...")
	}

	switch g.phase {
	case core.PhasePaused:
		renderOverlay(dst, "PAUSED", "Press P to resume")
	case core.PhaseEnded:
		title := "DRAW"
		switch g.outcome {
		case PlayerMark:
			title = "YOU WIN"
		case CPUMark:
			title = "CPU WINS"
		}
		renderOverlay(dst, title, "R: rematch  B: menu")
	}
}

// drawGrid paints the 3x3 frame.
func (g *Game) drawGrid(dst *core.Screen, originX, originY int) {
	boardW := cellW*3 + 4
	boardH := cellH*3 + 4

	dst.DrawBox(core.NewRect(originX, originY, boardW, boardH))
	for i := 1; i < 3; i++ {
		x := originX + i*(cellW+1)
		dst.DrawVLine(x, originY+1, boardH-2, '│')
		y := originY + i*(cellH+1)
		dst.DrawHLine(originX+1, y, boardW-2, '─')
	}
}

// cellCenter returns the screen position of a board cell's middle.
func (g *Game) cellCenter(originX, originY, cell int) (int, int) {
	col, row := cell%3, cell/3
	x := originX + 1 + col*(cellW+1) + cellW/2
	y := originY + 1 + row*(cellH+1) + cellH/2
	return x, y
}

func (g *Game) renderHUD(dst *core.Screen) {
	turn := "your move"
	if !g.playerTurn {
		turn = "CPU move"
	}
	hud := fmt.Sprintf(" Tic-Tac-Toe | Score: %d  Best: %d  [%s]  %s",
		g.score, g.highScore, g.difficulty, turn)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()
	boxW := core.Clamp(max(len(line1), len(line2))+4, 10, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
