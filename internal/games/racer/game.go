// Package racer implements the lane-based racer: the player's car holds one
// of a few lanes while oncoming traffic scrolls down; shifting lanes avoids
// a collision, every avoided car scores a point.
package racer

import (
	"fmt"
	"math/rand"

	"github.com/miniarcade/arcade-hub/internal/config"
	"github.com/miniarcade/arcade-hub/internal/core"
	"github.com/miniarcade/arcade-hub/internal/registry"
)

const (
	laneWidth = 7 // cells per lane, dividers included
	carWidth  = 3
	carHeight = 2
	hudHeight = 2
)

var (
	configPath string
	difficulty config.Difficulty = config.DifficultyNormal
)

// SetConfigPath sets a custom difficulty table path.
func SetConfigPath(path string) { configPath = path }

// SetDifficulty sets the difficulty label for the next game.
func SetDifficulty(label string) { difficulty = config.ParseDifficulty(label) }

// Game implements the Racer game logic.
type Game struct {
	tuning     config.RacerTuning
	difficulty config.Difficulty
	rng        *rand.Rand

	playerLane int
	traffic    *trafficManager
	score      int
	highScore  int
	phase      core.Phase
	notices    []string
	tickCount  int

	lanes   int
	roadX   int // left edge of the road
	roadW   int
	playerY int // top row of the player car
	screenW int
	screenH int
}

// New creates a Racer game in the menu phase.
func New() *Game {
	return &Game{phase: core.PhaseMenu}
}

func init() {
	registry.Register("racer", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "racer" }

// Title returns the display name.
func (g *Game) Title() string { return "Lane Racer" }

// Reset initializes the game into the menu phase, keeping the session high
// score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	table, err := config.LoadRacer(configPath)
	if err != nil {
		table, _ = config.LoadRacer("")
	}
	g.difficulty = difficulty
	g.tuning = table.Tuning(g.difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = core.PhaseMenu
	g.score = 0
	g.notices = nil
	g.tickCount = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.lanes = g.tuning.Lanes
	if g.lanes < 2 {
		g.lanes = 3
	}
	g.roadW = g.lanes * laneWidth
	g.roadX = (cfg.ScreenW - g.roadW) / 2
	g.playerY = cfg.ScreenH - carHeight - 2

	if g.traffic == nil {
		g.traffic = newTrafficManager(g.rng, g.tuning, g.lanes, cfg.ScreenH)
	} else {
		g.traffic.reset(g.rng, g.tuning, g.lanes, cfg.ScreenH)
	}
}

// start begins a play session.
func (g *Game) start() {
	g.phase = core.Transition(g.phase, core.PhasePlaying)
	g.score = 0
	g.tickCount = 0
	g.playerLane = g.lanes / 2
	g.traffic.reset(g.rng, g.tuning, g.lanes, g.screenH)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.start()
		}

	case core.PhaseEnded:
		switch {
		case in.Has(core.ActionRestart):
			g.start()
		case in.Has(core.ActionBack):
			g.phase = core.Transition(g.phase, core.PhaseMenu)
		}

	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.Transition(g.phase, core.PhasePlaying)
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = core.Transition(g.phase, core.PhasePaused)
			break
		}
		g.simulate(in)
	}

	return core.StepResult{State: g.State(), Notices: g.takeNotices()}
}

// simulate runs one playing-phase tick: steer, scroll traffic, collide.
func (g *Game) simulate(in core.InputFrame) {
	g.tickCount++

	switch {
	case in.Has(core.ActionLeft):
		g.playerLane = core.Clamp(g.playerLane-1, 0, g.lanes-1)
	case in.Has(core.ActionRight):
		g.playerLane = core.Clamp(g.playerLane+1, 0, g.lanes-1)
	}

	g.score += g.traffic.update(g.playerY)

	if g.traffic.collides(g.playerLane, g.playerRect()) {
		g.end()
	}
}

// playerRect returns the player car's collision box in road coordinates
// (x is the lane-local column, y the screen row).
func (g *Game) playerRect() core.Rect {
	return core.NewRect(0, g.playerY, carWidth, carHeight)
}

// laneX returns the screen column of a car's left edge in the given lane.
func (g *Game) laneX(lane int) int {
	return g.roadX + lane*laneWidth + (laneWidth-carWidth)/2
}

// end terminates the session and updates the session high score.
func (g *Game) end() {
	g.phase = core.Transition(g.phase, core.PhaseEnded)
	if g.score > g.highScore {
		g.highScore = g.score
		g.notices = append(g.notices, fmt.Sprintf("New session best: %d!", g.score))
	}
}

func (g *Game) takeNotices() []string {
	n := g.notices
	g.notices = nil
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, HighScore: g.highScore, Phase: g.phase}
}
