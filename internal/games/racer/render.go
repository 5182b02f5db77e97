package racer

import (
	"fmt"

	"github.com/miniarcade/arcade-hub/internal/core"
)

const (
	edgeChar    = '║'
	markingChar = '┆'
	playerChar  = '▲'
	trafficChar = '▼'
	carBodyChar = '█'
)

// Render draws the road, traffic and player car.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	// Road edges.
	for y := hudHeight; y < dst.Height(); y++ {
		dst.Set(g.roadX-1, y, edgeChar)
		dst.Set(g.roadX+g.roadW, y, edgeChar)
	}

	// Lane divider markings.
	for _, m := range g.traffic.markings {
		y := int(m.y)
		if y < hudHeight {
			continue
		}
		for lane := 1; lane < g.lanes; lane++ {
			dst.SetColored(g.roadX+lane*laneWidth, y, markingChar, core.ColorGray)
		}
	}

	if g.phase == core.PhaseMenu {
		renderOverlay(dst, "L A N E   R A C E R", "Press Space to start")
		return
	}

	// Oncoming traffic.
	for _, c := range g.traffic.cars {
		g.drawCar(dst, g.laneX(c.lane), int(c.y), trafficChar, core.ColorBrightRed)
	}

	// Player car.
	g.drawCar(dst, g.laneX(g.playerLane), g.playerY, playerChar, core.ColorBrightYellow)

	switch g.phase {
	case core.PhasePaused:
		renderOverlay(dst, "PAUSED", "Press P to resume")
	case core.PhaseEnded:
		renderOverlay(dst, "CRASH!", fmt.Sprintf("Score: %d  |  R: restart  B: menu", g.score))
	}
}

// drawCar paints a 3x2 car with a direction glyph on the nose row.
func (g *Game) drawCar(dst *core.Screen, x, y int, nose rune, color core.Color) {
	if y+1 < hudHeight {
		return
	}
	dst.SetColored(x, y, carBodyChar, color)
	dst.SetColored(x+1, y, nose, color)
	dst.SetColored(x+2, y, carBodyChar, color)
	for dx := 0; dx < carWidth; dx++ {
		dst.SetColored(x+dx, y+1, carBodyChar, color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Lane Racer | Score: %d  Best: %d  [%s]", g.score, g.highScore, g.difficulty)
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
