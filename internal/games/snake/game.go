// Package snake implements the grid game: a snake moves one cell per move
// interval, grows on food and dies on walls or its own body.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/miniarcade/arcade-hub/internal/config"
	"github.com/miniarcade/arcade-hub/internal/core"
	"github.com/miniarcade/arcade-hub/internal/registry"
)

// Direction is the snake's four-way movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirRight:
		return core.Point{X: 1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	case DirUp:
		return core.Point{Y: -1}
	default:
		return core.Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirDown
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

const hudHeight = 2

// Package-level knobs set by the CLI/selector before registry.Create.
var (
	configPath string
	difficulty config.Difficulty = config.DifficultyNormal
)

// SetConfigPath sets a custom difficulty table path.
func SetConfigPath(path string) { configPath = path }

// SetDifficulty sets the difficulty label for the next game.
func SetDifficulty(label string) { difficulty = config.ParseDifficulty(label) }

// Game implements the Snake game.
type Game struct {
	tuning     config.SnakeTuning
	difficulty config.Difficulty
	rng        *rand.Rand

	tick      uint64
	score     int
	highScore int
	phase     core.Phase
	notices   []string

	snake      []core.Point // head at index 0
	direction  Direction
	nextDir    Direction
	growth     int // pending tail growth in segments
	food       core.Point
	moveTicker int

	boardW, boardH int // playfield size in cells, borders excluded
	offsetX        int
	screenW        int
	screenH        int
	tooSmall       bool
}

// New creates a Snake game in the menu phase.
func New() *Game {
	return &Game{phase: core.PhaseMenu}
}

func init() {
	registry.Register("snake", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset initializes the game into the menu phase. The session high score
// is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	table, err := config.LoadSnake(configPath)
	if err != nil {
		table, _ = config.LoadSnake("")
	}
	g.difficulty = difficulty
	g.tuning = table.Tuning(g.difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.phase = core.PhaseMenu
	g.notices = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// Playfield fills the screen below the HUD, inside a one-cell border.
	g.boardW = cfg.ScreenW - 2
	g.boardH = cfg.ScreenH - hudHeight - 2
	g.offsetX = 1
	g.tooSmall = g.boardW < 10 || g.boardH < 6
}

// start begins a play session: score resets to zero exactly here.
func (g *Game) start() {
	g.phase = core.Transition(g.phase, core.PhasePlaying)
	g.score = 0
	g.moveTicker = 0
	g.growth = 0
	g.initSnake()
	g.spawnFood()
}

// initSnake places the snake horizontally near the board center.
func (g *Game) initSnake() {
	length := g.tuning.StartLength
	if length < 2 {
		length = 3
	}
	headX := g.boardW/2 + length/2
	y := g.boardH / 2

	g.snake = g.snake[:0]
	for i := 0; i < length; i++ {
		g.snake = append(g.snake, core.Point{X: headX - i, Y: y})
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places food on a uniformly random cell not occupied by the
// snake. Occupancy is checked so a collectible never spawns on the player.
func (g *Game) spawnFood() {
	var empty []core.Point
	for y := 0; y < g.boardH; y++ {
		for x := 0; x < g.boardW; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
}

func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case core.PhaseMenu:
		if !g.tooSmall && (input.Has(core.ActionJump) || input.Has(core.ActionConfirm)) {
			g.start()
		}

	case core.PhaseEnded:
		switch {
		case input.Has(core.ActionRestart):
			g.start()
		case input.Has(core.ActionBack):
			g.phase = core.Transition(g.phase, core.PhaseMenu)
		}

	case core.PhasePaused:
		if input.Has(core.ActionPause) {
			g.phase = core.Transition(g.phase, core.PhasePlaying)
		}

	case core.PhasePlaying:
		if input.Has(core.ActionPause) {
			g.phase = core.Transition(g.phase, core.PhasePaused)
			break
		}
		g.bufferDirection(input)
		g.moveTicker++
		if g.moveTicker >= g.tuning.MoveEveryTicks {
			g.moveTicker = 0
			g.move()
		}
	}

	return core.StepResult{State: g.State(), Notices: g.takeNotices()}
}

// bufferDirection records a direction change for the next move, refusing a
// reversal directly into the trailing body.
func (g *Game) bufferDirection(input core.InputFrame) {
	next := g.nextDir
	switch {
	case input.Has(core.ActionUp):
		next = DirUp
	case input.Has(core.ActionDown):
		next = DirDown
	case input.Has(core.ActionLeft):
		next = DirLeft
	case input.Has(core.ActionRight):
		next = DirRight
	}
	if len(g.snake) > 1 && next == g.direction.Opposite() {
		return
	}
	g.nextDir = next
}

// move advances the snake one cell in the buffered direction.
func (g *Game) move() {
	if len(g.snake) == 0 {
		return
	}
	g.direction = g.nextDir
	head := g.snake[0].Add(g.direction.Delta())

	// Leaving the playfield ends the session.
	if head.X < 0 || head.X >= g.boardW || head.Y < 0 || head.Y >= g.boardH {
		g.end()
		return
	}

	// Body collision, excluding the tail cell about to be vacated.
	checkLen := len(g.snake)
	if g.growth == 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == head {
			g.end()
			return
		}
	}

	g.snake = append([]core.Point{head}, g.snake...)

	if head == g.food {
		g.score++
		g.growth += g.tuning.GrowthPerFood
		g.spawnFood()
	}

	if g.growth > 0 {
		g.growth--
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
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
