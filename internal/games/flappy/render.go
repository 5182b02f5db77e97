package flappy

import (
	"fmt"

	"github.com/miniarcade/arcade-hub/internal/core"
)

// Render draws the ground, pipes, bird and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), groundChar)

	for _, p := range g.pipes.pipes {
		g.drawPipe(dst, p)
	}

	// Bird: 2x2 block with a beak on the top-right cell.
	py := int(g.playerY)
	for dy := 0; dy < playerHeight; dy++ {
		for dx := 0; dx < playerWidth; dx++ {
			ch := bodyChar
			if dy == 0 && dx == playerWidth-1 {
				ch = birdChar
			}
			dst.SetColored(playerX+dx, py+dy, ch, core.ColorBrightYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Best: %d  [%s] ", g.score, g.highScore, g.difficulty))

	switch g.phase {
	case core.PhaseMenu:
		g.drawCenteredMessage(dst, "F L A P P Y", "Press Space to start")
	case core.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseEnded:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R: restart  B: menu", g.score))
	}
}

func (g *Game) drawPipe(dst *core.Screen, p pipe) {
	screenH := dst.Height() - 1 // leave the ground row
	width := g.tuning.PipeWidth

	for y := 0; y < p.gapY; y++ {
		for x := 0; x < width; x++ {
			dst.SetColored(p.x+x, y, pipeChar, core.ColorGreen)
		}
	}
	if p.gapY > 0 {
		for x := 0; x < width; x++ {
			dst.SetColored(p.x+x, p.gapY-1, pipeCapTop, core.ColorGreen)
		}
	}

	bottom := p.gapY + p.gapHeight
	for y := bottom; y < screenH; y++ {
		for x := 0; x < width; x++ {
			dst.SetColored(p.x+x, y, pipeChar, core.ColorGreen)
		}
	}
	if bottom < screenH {
		for x := 0; x < width; x++ {
			dst.SetColored(p.x+x, bottom, pipeCapBottom, core.ColorGreen)
		}
	}
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
