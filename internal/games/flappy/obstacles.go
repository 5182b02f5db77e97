package flappy

import (
	"math/rand"

	"github.com/miniarcade/arcade-hub/internal/config"
	"github.com/miniarcade/arcade-hub/internal/core"
)

// pipe is a vertical obstacle pair with a gap for the player to pass.
type pipe struct {
	x         int // left edge
	gapY      int // top of the gap
	gapHeight int
	passed    bool // already counted for scoring
}

// topRect returns the collision box of the upper pipe section.
func (p pipe) topRect(width int) core.Rect {
	return core.NewRect(p.x, 0, width, p.gapY)
}

// bottomRect returns the collision box of the lower pipe section.
func (p pipe) bottomRect(width, screenH int) core.Rect {
	bottom := p.gapY + p.gapHeight
	return core.NewRect(p.x, bottom, width, screenH-bottom)
}

// pipeManager spawns, scrolls and despawns pipes. Pipes are appended at the
// tail and removed once fully off the left edge.
type pipeManager struct {
	pipes   []pipe
	rng     *rand.Rand
	tuning  config.FlappyTuning
	screenW int
	screenH int
	scroll  float64 // fractional scroll accumulator
}

func newPipeManager(seed int64, screenW, screenH int, tuning config.FlappyTuning) *pipeManager {
	pm := &pipeManager{
		pipes:   make([]pipe, 0, 8),
		screenW: screenW,
		screenH: screenH,
	}
	pm.reset(seed, tuning)
	return pm
}

func (pm *pipeManager) reset(seed int64, tuning config.FlappyTuning) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.tuning = tuning
	pm.scroll = 0
}

func (pm *pipeManager) resize(screenW, screenH int) {
	pm.screenW = screenW
	pm.screenH = screenH
}

// update scrolls pipes left and spawns/despawns as needed. Returns the
// number of pipes newly passed by the player's leading edge this tick.
func (pm *pipeManager) update(playerRight int) int {
	pm.scroll += pm.tuning.ScrollSpeed
	step := int(pm.scroll)
	pm.scroll -= float64(step)

	for i := range pm.pipes {
		pm.pipes[i].x -= step
	}

	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].passed && pm.pipes[i].x+pm.tuning.PipeWidth < playerRight {
			pm.pipes[i].passed = true
			passed++
		}
	}

	// Drop pipes that left the screen.
	live := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.x+pm.tuning.PipeWidth > 0 {
			live = append(live, p)
		}
	}
	pm.pipes = live

	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].x < pm.screenW-pm.tuning.PipeSpacing {
		pm.spawn()
	}

	return passed
}

// spawn appends a new pipe at the right edge with the gap placed uniformly
// between the configured margins.
func (pm *pipeManager) spawn() {
	gap := pm.tuning.GapSize
	groundY := pm.screenH - 2

	minGapY := pm.tuning.TopMargin
	maxGapY := groundY - pm.tuning.BottomMargin - gap
	if maxGapY < minGapY {
		maxGapY = minGapY
	}

	gapY := minGapY
	if maxGapY > minGapY {
		gapY += pm.rng.Intn(maxGapY - minGapY + 1)
	}

	pm.pipes = append(pm.pipes, pipe{
		x:         pm.screenW,
		gapY:      gapY,
		gapHeight: gap,
	})
}

// collides tests the player rect against every pipe section.
func (pm *pipeManager) collides(player core.Rect) bool {
	groundY := pm.screenH - 1
	for _, p := range pm.pipes {
		if player.Intersects(p.topRect(pm.tuning.PipeWidth)) ||
			player.Intersects(p.bottomRect(pm.tuning.PipeWidth, groundY)) {
			return true
		}
	}
	return false
}
