// Package tictactoe implements the turn-based board game against a
// heuristic computer opponent. The CPU has no lookahead: a fixed-priority
// rule chain, perturbed toward random play on lower difficulties.
package tictactoe

import (
	"math/rand"

	"github.com/miniarcade/arcade-hub/internal/config"
	"github.com/miniarcade/arcade-hub/internal/core"
	"github.com/miniarcade/arcade-hub/internal/registry"
)

// Round outcome points: a won round scores more than a draw, a lost round
// scores nothing. Points are awarded once, at round end.
const (
	winPoints  = 3
	drawPoints = 1
)

// cpuThinkTicks delays the CPU reply so moves are visible at 60 ticks/sec.
const cpuThinkTicks = 18

var (
	configPath string
	difficulty config.Difficulty = config.DifficultyNormal
)

// SetConfigPath sets a custom difficulty table path.
func SetConfigPath(path string) { configPath = path }

// SetDifficulty sets the difficulty label for the next game.
func SetDifficulty(label string) { difficulty = config.ParseDifficulty(label) }

// Game implements the Tic-Tac-Toe game.
type Game struct {
	tuning     config.TicTacToeTuning
	difficulty config.Difficulty
	rng        *rand.Rand

	board      Board
	cursor     int  // 0..8, the player's selected cell
	playerTurn bool // whose move it is while playing
	cpuTimer   int  // ticks until the pending CPU move lands
	outcome    Mark // winner of the finished round, Empty on draw

	score     int
	highScore int
	phase     core.Phase
	notices   []string
	screenW   int
	screenH   int
}

// New creates a Tic-Tac-Toe game in the menu phase.
func New() *Game {
	return &Game{phase: core.PhaseMenu}
}

func init() {
	registry.Register("tictactoe", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tictactoe" }

// Title returns the display name.
func (g *Game) Title() string { return "Tic-Tac-Toe" }

// Reset initializes the game into the menu phase, keeping the session high
// score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	table, err := config.LoadTicTacToe(configPath)
	if err != nil {
		table, _ = config.LoadTicTacToe("")
	}
	g.difficulty = difficulty
	g.tuning = table.Tuning(g.difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = core.PhaseMenu
	g.score = 0
	g.notices = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.board = Board{}
}

// start begins a round: empty board, player moves first.
func (g *Game) start() {
	g.phase = core.Transition(g.phase, core.PhasePlaying)
	g.score = 0
	g.board = Board{}
	g.cursor = center
	g.playerTurn = true
	g.cpuTimer = 0
	g.outcome = Empty
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
		g.playTurn(in)
	}

	return core.StepResult{State: g.State(), Notices: g.takeNotices()}
}

// playTurn handles one playing-phase tick: cursor movement and mark
// placement on the player's turn, the delayed heuristic reply on the CPU's.
func (g *Game) playTurn(in core.InputFrame) {
	if g.playerTurn {
		g.moveCursor(in)
		if in.Has(core.ActionConfirm) && g.board[g.cursor] == Empty {
			g.board[g.cursor] = PlayerMark
			if g.finishIfOver() {
				return
			}
			g.playerTurn = false
			g.cpuTimer = cpuThinkTicks
		}
		return
	}

	if g.cpuTimer > 0 {
		g.cpuTimer--
		return
	}
	if cell := cpuMove(g.board, CPUMark, g.rng, g.tuning.Obedience); cell >= 0 {
		g.board[cell] = CPUMark
	}
	if g.finishIfOver() {
		return
	}
	g.playerTurn = true
}

// moveCursor shifts the selection within the 3x3 grid.
func (g *Game) moveCursor(in core.InputFrame) {
	col, row := g.cursor%3, g.cursor/3
	switch {
	case in.Has(core.ActionUp):
		row = core.Clamp(row-1, 0, 2)
	case in.Has(core.ActionDown):
		row = core.Clamp(row+1, 0, 2)
	case in.Has(core.ActionLeft):
		col = core.Clamp(col-1, 0, 2)
	case in.Has(core.ActionRight):
		col = core.Clamp(col+1, 0, 2)
	}
	g.cursor = row*3 + col
}

// finishIfOver ends the round when a line is complete or the board is
// full. Returns true when the round ended.
func (g *Game) finishIfOver() bool {
	winner := g.board.Winner()
	if winner == Empty && !g.board.Full() {
		return false
	}

	g.outcome = winner
	g.phase = core.Transition(g.phase, core.PhaseEnded)

	switch winner {
	case PlayerMark:
		g.score = winPoints
		g.notices = append(g.notices, "Round won!")
	case CPUMark:
		g.notices = append(g.notices, "Round lost")
	default:
		g.score = drawPoints
		g.notices = append(g.notices, "Draw")
	}

	if g.score > g.highScore {
		g.highScore = g.score
	}
	return true
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
