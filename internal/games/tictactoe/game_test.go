package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/miniarcade/arcade-hub/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func startGame(t *testing.T, seed int64) *Game {
	t.Helper()

	g := New()
	g.Reset(testConfig(seed))

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.phase != core.PhasePlaying {
		t.Fatalf("expected playing phase after start, got %v", g.phase)
	}
	return g
}

// stepUntilPlayerTurn runs empty ticks through the CPU think delay.
func stepUntilPlayerTurn(t *testing.T, g *Game) {
	t.Helper()

	input := core.NewInputFrame()
	for i := 0; i < cpuThinkTicks+2; i++ {
		if g.playerTurn || g.phase != core.PhasePlaying {
			return
		}
		g.Step(input)
	}
	t.Fatal("CPU never moved")
}

func TestHeuristicTakesWin(t *testing.T) {
	b := Board{
		CPUMark, CPUMark, Empty,
		PlayerMark, PlayerMark, Empty,
		Empty, Empty, Empty,
	}
	// Winning at 2 beats blocking at 5.
	if got := HeuristicMove(b, CPUMark); got != 2 {
		t.Errorf("HeuristicMove = %d, want 2 (win)", got)
	}
}

func TestHeuristicBlocksOpponent(t *testing.T) {
	b := Board{
		PlayerMark, PlayerMark, Empty,
		Empty, CPUMark, Empty,
		Empty, Empty, Empty,
	}
	if got := HeuristicMove(b, CPUMark); got != 2 {
		t.Errorf("HeuristicMove = %d, want 2 (block)", got)
	}
}

func TestHeuristicPrefersCenter(t *testing.T) {
	b := Board{
		PlayerMark, Empty, Empty,
		Empty, Empty, Empty,
		Empty, Empty, Empty,
	}
	if got := HeuristicMove(b, CPUMark); got != center {
		t.Errorf("HeuristicMove = %d, want %d (center)", got, center)
	}
}

func TestHeuristicFallsBackToCorner(t *testing.T) {
	b := Board{
		Empty, Empty, Empty,
		Empty, PlayerMark, Empty,
		Empty, Empty, Empty,
	}
	got := HeuristicMove(b, CPUMark)
	if got != 0 && got != 2 && got != 6 && got != 8 {
		t.Errorf("HeuristicMove = %d, want a corner", got)
	}
}

func TestHeuristicTakesAnyRemaining(t *testing.T) {
	b := Board{
		PlayerMark, Empty, CPUMark,
		CPUMark, PlayerMark, PlayerMark,
		PlayerMark, CPUMark, CPUMark,
	}
	if got := HeuristicMove(b, CPUMark); got != 1 {
		t.Errorf("HeuristicMove = %d, want 1 (only legal cell)", got)
	}
}

func TestFullObedienceAlwaysFollowsChain(t *testing.T) {
	b := Board{
		CPUMark, CPUMark, Empty,
		PlayerMark, PlayerMark, Empty,
		Empty, Empty, Empty,
	}
	rng := rand.New(rand.NewSource(1))

	// obedience 1.0 is the hard preset: never a random move.
	for i := 0; i < 100; i++ {
		if got := cpuMove(b, CPUMark, rng, 1.0); got != 2 {
			t.Fatalf("cpuMove = %d with full obedience, want 2", got)
		}
	}
}

func TestZeroObedienceStaysLegal(t *testing.T) {
	b := Board{
		PlayerMark, Empty, CPUMark,
		Empty, CPUMark, Empty,
		Empty, PlayerMark, Empty,
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		got := cpuMove(b, CPUMark, rng, 0)
		if got < 0 || got > 8 || b[got] != Empty {
			t.Fatalf("cpuMove = %d, not a legal cell", got)
		}
	}
}

func TestWinnerDetection(t *testing.T) {
	cases := []struct {
		name  string
		board Board
		want  Mark
	}{
		{"empty", Board{}, Empty},
		{"row", Board{PlayerMark, PlayerMark, PlayerMark}, PlayerMark},
		{"column", Board{CPUMark, Empty, Empty, CPUMark, Empty, Empty, CPUMark}, CPUMark},
		{"diagonal", Board{PlayerMark, Empty, Empty, Empty, PlayerMark, Empty, Empty, Empty, PlayerMark}, PlayerMark},
	}
	for _, tc := range cases {
		if got := tc.board.Winner(); got != tc.want {
			t.Errorf("%s: Winner = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPlayerMoveOnOccupiedCellIgnored(t *testing.T) {
	g := startGame(t, 1)

	g.board[center] = CPUMark
	g.cursor = center

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.board[center] != CPUMark {
		t.Error("occupied cell was overwritten")
	}
	if !g.playerTurn {
		t.Error("turn passed to CPU after an invalid move")
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	g := startGame(t, 1)

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	for i := 0; i < 5; i++ {
		g.Step(input)
	}
	if g.cursor/3 != 0 {
		t.Errorf("cursor row = %d after steering up, want 0", g.cursor/3)
	}

	input.Clear()
	input.Set(core.ActionRight)
	for i := 0; i < 5; i++ {
		g.Step(input)
	}
	if g.cursor%3 != 2 {
		t.Errorf("cursor col = %d after steering right, want 2", g.cursor%3)
	}
}

func TestCPUMovesAfterThinkDelay(t *testing.T) {
	g := startGame(t, 1)

	// Player takes the center.
	g.cursor = center
	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.playerTurn {
		t.Fatal("expected CPU's turn after the player move")
	}

	marks := 0
	for _, m := range g.board {
		if m != Empty {
			marks++
		}
	}
	if marks != 1 {
		t.Fatalf("expected only the player's mark before CPU moved, got %d", marks)
	}

	stepUntilPlayerTurn(t, g)

	marks = 0
	for _, m := range g.board {
		if m != Empty {
			marks++
		}
	}
	if marks != 2 {
		t.Errorf("expected two marks after CPU move, got %d", marks)
	}
}

func TestWinScoresAndEnds(t *testing.T) {
	g := startGame(t, 1)

	// One move away from a player win.
	g.board = Board{
		PlayerMark, PlayerMark, Empty,
		CPUMark, CPUMark, Empty,
		Empty, Empty, Empty,
	}
	// Swap a cell so the board stays consistent with two moves each.
	g.board[5] = Empty
	g.board[7] = CPUMark
	g.cursor = 2

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.phase != core.PhaseEnded {
		t.Fatalf("expected ended phase after winning move, got %v", g.phase)
	}
	if g.outcome != PlayerMark {
		t.Errorf("outcome = %v, want player", g.outcome)
	}
	if g.score != winPoints {
		t.Errorf("score = %d, want %d", g.score, winPoints)
	}
}

func TestDrawScores(t *testing.T) {
	g := startGame(t, 1)

	// Full board minus one cell, no winner after the last move:
	//  X O X
	//  X O O
	//  O X .   player takes 8
	g.board = Board{
		PlayerMark, CPUMark, PlayerMark,
		PlayerMark, CPUMark, CPUMark,
		CPUMark, PlayerMark, Empty,
	}
	g.cursor = 8

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.phase != core.PhaseEnded {
		t.Fatalf("expected ended phase after the draw, got %v", g.phase)
	}
	if g.outcome != Empty {
		t.Errorf("outcome = %v, want draw", g.outcome)
	}
	if g.score != drawPoints {
		t.Errorf("score = %d, want %d", g.score, drawPoints)
	}
}

func TestRematchResetsBoard(t *testing.T) {
	g := startGame(t, 1)

	g.board[0] = PlayerMark
	g.score = winPoints
	g.phase = core.PhaseEnded

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.phase != core.PhasePlaying {
		t.Fatalf("expected playing phase after rematch, got %v", g.phase)
	}
	if g.board != (Board{}) {
		t.Error("board not cleared on rematch")
	}
	if g.score != 0 {
		t.Errorf("score = %d after rematch, want 0", g.score)
	}
	if !g.playerTurn {
		t.Error("player must move first after rematch")
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := startGame(t, 1)

	screen := core.NewScreen(80, 24)
	input := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(input)
		g.Render(screen)
	}
}
