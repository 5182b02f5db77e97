package snake

import (
	"fmt"

	"github.com/miniarcade/arcade-hub/internal/core"
)

// Render draws the board, snake and food into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Border around the playfield.
	dst.DrawBox(core.NewRect(g.offsetX-1, hudHeight, g.boardW+2, g.boardH+2))

	if g.phase == core.PhaseMenu {
		renderOverlay(dst, "S N A K E", "Press Space to start")
		return
	}

	// Food.
	if g.food.X >= 0 {
		dst.SetColored(g.offsetX+g.food.X, hudHeight+1+g.food.Y, '*', core.ColorBrightYellow)
	}

	// Snake, head first.
	for i, seg := range g.snake {
		ch, color := 'o', core.ColorGreen
		if i == 0 {
			ch, color = 'O', core.ColorBrightGreen
		}
		dst.SetColored(g.offsetX+seg.X, hudHeight+1+seg.Y, ch, color)
	}

	switch g.phase {
	case core.PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case core.PhaseEnded:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  R: restart  B: menu", g.score))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  [%s]", g.score, g.highScore, g.difficulty)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
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
