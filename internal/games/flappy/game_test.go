package flappy

import (
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
	input.Set(core.ActionJump)
	g.Step(input)

	if g.phase != core.PhasePlaying {
		t.Fatalf("expected playing phase after start, got %v", g.phase)
	}
	return g
}

func TestMenuHoldsUntilFlap(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	input := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if g.phase != core.PhaseMenu {
		t.Fatalf("game left menu without input: %v", g.phase)
	}

	y := g.playerY
	if y != float64(testConfig(1).ScreenH)/2 {
		t.Errorf("player drifted in menu: y = %v", y)
	}
}

func TestJumpSetsImpulse(t *testing.T) {
	g := startGame(t, 42)

	input := core.NewInputFrame()
	input.Set(core.ActionJump)
	g.Step(input)

	// One gravity tick is applied after the impulse.
	want := g.tuning.JumpImpulse + g.tuning.Gravity
	if g.playerVel != want {
		t.Errorf("velocity after jump = %v, want %v", g.playerVel, want)
	}
	if g.playerVel >= 0 {
		t.Error("jump must produce upward (negative) velocity")
	}
}

func TestGravityPullsDown(t *testing.T) {
	g := startGame(t, 42)

	input := core.NewInputFrame()
	v1 := g.playerVel
	g.Step(input)
	v2 := g.playerVel

	if v2 <= v1 {
		t.Errorf("velocity did not increase under gravity: %v -> %v", v1, v2)
	}
}

func TestTerminalVelocity(t *testing.T) {
	g := startGame(t, 42)

	input := core.NewInputFrame()
	for i := 0; i < 100 && g.phase == core.PhasePlaying; i++ {
		g.Step(input)
		if g.playerVel > g.tuning.MaxFallSpeed {
			t.Fatalf("velocity %v exceeded terminal velocity %v", g.playerVel, g.tuning.MaxFallSpeed)
		}
	}
}

func TestFallingToGroundEndsGame(t *testing.T) {
	g := startGame(t, 42)

	// Never flap: the bird must eventually hit the ground.
	input := core.NewInputFrame()
	for i := 0; i < 500; i++ {
		g.Step(input)
		if g.phase == core.PhaseEnded {
			return
		}
	}
	t.Fatal("game did not end after free fall")
}

func TestCeilingEndsGame(t *testing.T) {
	g := startGame(t, 42)

	input := core.NewInputFrame()
	input.Set(core.ActionJump)
	for i := 0; i < 500; i++ {
		g.Step(input)
		if g.phase == core.PhaseEnded {
			if g.playerY != 0 {
				t.Errorf("player clamped to y = %v, want 0", g.playerY)
			}
			return
		}
	}
	t.Fatal("game did not end after flying into the ceiling")
}

func TestDeterminismSameSeed(t *testing.T) {
	g1 := startGame(t, 777)
	g2 := startGame(t, 777)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i%17 == 0 {
			input.Set(core.ActionJump)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.playerY != g2.playerY || g1.score != g2.score || g1.phase != g2.phase {
		t.Errorf("divergence: y %v/%v score %d/%d phase %v/%v",
			g1.playerY, g2.playerY, g1.score, g2.score, g1.phase, g2.phase)
	}
	if len(g1.pipes.pipes) != len(g2.pipes.pipes) {
		t.Errorf("pipe count mismatch: %d vs %d", len(g1.pipes.pipes), len(g2.pipes.pipes))
	}
}

func TestPipeCollision(t *testing.T) {
	g := startGame(t, 1)

	// Drop a pipe right on the player with no gap overlap.
	g.pipes.pipes = []pipe{{x: playerX, gapY: 0, gapHeight: 0}}

	if !g.pipes.collides(g.playerRect()) {
		t.Fatal("expected collision with pipe covering the player column")
	}

	input := core.NewInputFrame()
	g.Step(input)
	if g.phase != core.PhaseEnded {
		t.Errorf("expected ended phase after pipe collision, got %v", g.phase)
	}
}

func TestGapIsPassable(t *testing.T) {
	g := startGame(t, 1)

	// A player inside the gap must not collide.
	p := pipe{x: playerX, gapY: 5, gapHeight: g.tuning.GapSize}
	g.pipes.pipes = []pipe{p}
	g.playerY = float64(p.gapY + 1)

	if g.pipes.collides(g.playerRect()) {
		t.Error("player inside gap must not collide")
	}
}

func TestPassingPipeScores(t *testing.T) {
	g := startGame(t, 1)

	// A pipe fully behind the player's leading edge counts once.
	g.pipes.pipes = []pipe{{x: playerX - g.tuning.PipeWidth - 1, gapY: 5, gapHeight: g.tuning.GapSize}}

	passed := g.pipes.update(playerX + playerWidth)
	if passed != 1 {
		t.Fatalf("passed = %d, want 1", passed)
	}

	// Same pipe must not count again.
	if again := g.pipes.update(playerX + playerWidth); again != 0 {
		t.Errorf("pipe counted twice: %d", again)
	}
}

func TestSpawnGapWithinMargins(t *testing.T) {
	g := startGame(t, 33)

	groundY := testConfig(33).ScreenH - 2
	for i := 0; i < 100; i++ {
		g.pipes.pipes = g.pipes.pipes[:0]
		g.pipes.spawn()

		p := g.pipes.pipes[0]
		if p.gapY < g.tuning.TopMargin {
			t.Fatalf("gap top %d above top margin %d", p.gapY, g.tuning.TopMargin)
		}
		if p.gapY+p.gapHeight > groundY-g.tuning.BottomMargin {
			t.Fatalf("gap bottom %d below bottom margin", p.gapY+p.gapHeight)
		}
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := startGame(t, 9)

	g.score = 4
	g.end()
	if g.phase != core.PhaseEnded {
		t.Fatalf("expected ended phase, got %v", g.phase)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.phase != core.PhasePlaying {
		t.Fatalf("expected playing phase after restart, got %v", g.phase)
	}
	if g.score != 0 {
		t.Errorf("score = %d after restart, want 0", g.score)
	}
	if g.highScore != 4 {
		t.Errorf("high score = %d, want 4", g.highScore)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := startGame(t, 8)

	screen := core.NewScreen(80, 24)
	input := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(input)
		g.Render(screen)
	}
}
