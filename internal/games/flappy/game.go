// Package flappy implements the side-scrolling bird game: constant gravity,
// a jump impulse, and vertical pipes with a passable gap.
package flappy

import (
	"fmt"

	"github.com/miniarcade/arcade-hub/internal/config"
	"github.com/miniarcade/arcade-hub/internal/core"
	"github.com/miniarcade/arcade-hub/internal/registry"
)

// Player hitbox and fixed horizontal position.
const (
	playerX      = 10
	playerWidth  = 2
	playerHeight = 2
)

// Visual characters.
const (
	birdChar      = '▶'
	bodyChar      = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

var (
	configPath string
	difficulty config.Difficulty = config.DifficultyNormal
)

// SetConfigPath sets a custom difficulty table path.
func SetConfigPath(path string) { configPath = path }

// SetDifficulty sets the difficulty label for the next game.
func SetDifficulty(label string) { difficulty = config.ParseDifficulty(label) }

// Game implements the Flappy game logic.
type Game struct {
	tuning     config.FlappyTuning
	difficulty config.Difficulty

	playerY   float64 // top of hitbox
	playerVel float64
	pipes     *pipeManager
	score     int
	highScore int
	phase     core.Phase
	notices   []string
	tickCount int
	runtime   core.RuntimeConfig
}

// New creates a Flappy game in the menu phase.
func New() *Game {
	return &Game{phase: core.PhaseMenu}
}

func init() {
	registry.Register("flappy", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy" }

// Reset initializes the game into the menu phase, keeping the session high
// score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	table, err := config.LoadFlappy(configPath)
	if err != nil {
		table, _ = config.LoadFlappy("")
	}
	g.difficulty = difficulty
	g.tuning = table.Tuning(g.difficulty)

	g.runtime = cfg
	g.phase = core.PhaseMenu
	g.score = 0
	g.notices = nil
	g.tickCount = 0
	g.playerY = float64(cfg.ScreenH) / 2
	g.playerVel = 0

	if g.pipes == nil {
		g.pipes = newPipeManager(cfg.Seed, cfg.ScreenW, cfg.ScreenH, g.tuning)
	} else {
		g.pipes.resize(cfg.ScreenW, cfg.ScreenH)
		g.pipes.reset(cfg.Seed, g.tuning)
	}
}

// start begins a play session.
func (g *Game) start() {
	g.phase = core.Transition(g.phase, core.PhasePlaying)
	g.score = 0
	g.tickCount = 0
	g.playerY = float64(g.runtime.ScreenH) / 2
	g.playerVel = g.tuning.JumpImpulse // the starting flap
	g.pipes.reset(g.pipes.rng.Int63(), g.tuning)
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

// simulate runs one playing-phase tick: integrate, scroll, collide.
func (g *Game) simulate(in core.InputFrame) {
	g.tickCount++

	if in.Has(core.ActionJump) {
		g.playerVel = g.tuning.JumpImpulse
	}

	// Constant-acceleration integration with a terminal velocity.
	g.playerVel += g.tuning.Gravity
	if g.playerVel > g.tuning.MaxFallSpeed {
		g.playerVel = g.tuning.MaxFallSpeed
	}
	g.playerY += g.playerVel

	g.score += g.pipes.update(playerX + playerWidth)

	// Ceiling.
	if g.playerY < 0 {
		g.playerY = 0
		g.end()
		return
	}

	// Ground.
	groundY := g.runtime.ScreenH - 2
	if int(g.playerY)+playerHeight >= groundY {
		g.playerY = float64(groundY - playerHeight)
		g.end()
		return
	}

	if g.pipes.collides(g.playerRect()) {
		g.end()
	}
}

func (g *Game) playerRect() core.Rect {
	return core.NewRect(playerX, int(g.playerY), playerWidth, playerHeight)
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
