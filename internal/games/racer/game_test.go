package racer

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
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.phase != core.PhasePlaying {
		t.Fatalf("expected playing phase after start, got %v", g.phase)
	}
	return g
}

func TestStartsInCenterLane(t *testing.T) {
	g := startGame(t, 1)

	if g.playerLane != g.lanes/2 {
		t.Errorf("player lane = %d, want %d", g.playerLane, g.lanes/2)
	}
}

func TestLaneShiftClampsAtEdges(t *testing.T) {
	g := startGame(t, 1)

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	for i := 0; i < g.lanes+3; i++ {
		g.Step(input)
		if g.phase != core.PhasePlaying {
			t.Skip("traffic ended the round before the lane check")
		}
	}
	if g.playerLane != 0 {
		t.Errorf("player lane = %d after steering left, want 0", g.playerLane)
	}

	input.Clear()
	input.Set(core.ActionRight)
	for i := 0; i < g.lanes+3; i++ {
		g.Step(input)
		if g.phase != core.PhasePlaying {
			t.Skip("traffic ended the round before the lane check")
		}
	}
	if g.playerLane != g.lanes-1 {
		t.Errorf("player lane = %d after steering right, want %d", g.playerLane, g.lanes-1)
	}
}

func TestSpawnHonorsMinHeadway(t *testing.T) {
	g := startGame(t, 77)
	tm := g.traffic

	// Cars in one lane all scroll at the same speed, so the spawn-time
	// headway must hold for the whole round.
	minGap := float64(tm.tuning.MinHeadway + carHeight)
	for i := 0; i < 2000; i++ {
		tm.update(g.playerY)

		for ai, a := range tm.cars {
			for bi, b := range tm.cars {
				if ai == bi || a.lane != b.lane {
					continue
				}
				gap := a.y - b.y
				if gap < 0 {
					gap = -gap
				}
				if gap < minGap {
					t.Fatalf("headway violated in lane %d: y %v and %v", a.lane, a.y, b.y)
				}
			}
		}
	}
}

func TestCollisionSameLaneOnly(t *testing.T) {
	g := startGame(t, 5)
	tm := g.traffic

	// A car overlapping the player's rows in a different lane is harmless.
	tm.cars = []car{{lane: g.playerLane + 1, y: float64(g.playerY)}}
	if tm.collides(g.playerLane, g.playerRect()) {
		t.Error("collision reported across lanes")
	}

	// The same rows in the player's lane crash.
	tm.cars = []car{{lane: g.playerLane, y: float64(g.playerY)}}
	if !tm.collides(g.playerLane, g.playerRect()) {
		t.Error("no collision reported in the player's lane")
	}
}

func TestCrashEndsGame(t *testing.T) {
	g := startGame(t, 5)

	g.traffic.cars = []car{{lane: g.playerLane, y: float64(g.playerY)}}

	input := core.NewInputFrame()
	g.Step(input)

	if g.phase != core.PhaseEnded {
		t.Errorf("expected ended phase after crash, got %v", g.phase)
	}
}

func TestPassedCarScoresOnce(t *testing.T) {
	g := startGame(t, 5)
	tm := g.traffic

	// A car already below the player counts exactly once.
	tm.cars = []car{{lane: 0, y: float64(g.playerY + carHeight + 1)}}

	if passed := tm.update(g.playerY); passed != 1 {
		t.Fatalf("passed = %d, want 1", passed)
	}
	if passed := tm.update(g.playerY); passed != 0 {
		t.Errorf("car counted twice: %d", passed)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := startGame(t, 123)

	input := core.NewInputFrame()
	prev := 0
	for i := 0; i < 2000 && g.phase == core.PhasePlaying; i++ {
		// Wiggle between lanes to survive longer.
		input.Clear()
		if i%30 == 0 {
			input.Set(core.ActionLeft)
		} else if i%30 == 15 {
			input.Set(core.ActionRight)
		}
		res := g.Step(input)
		if res.State.Score < prev {
			t.Fatalf("score decreased: %d -> %d", prev, res.State.Score)
		}
		prev = res.State.Score
	}
}

func TestRestartResetsScore(t *testing.T) {
	g := startGame(t, 9)

	g.score = 6
	g.end()

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.phase != core.PhasePlaying {
		t.Fatalf("expected playing phase after restart, got %v", g.phase)
	}
	if g.score != 0 {
		t.Errorf("score = %d after restart, want 0", g.score)
	}
	if g.highScore != 6 {
		t.Errorf("high score = %d, want 6", g.highScore)
	}
	if len(g.traffic.cars) != 0 {
		t.Errorf("traffic not cleared on restart: %d cars", len(g.traffic.cars))
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := startGame(t, 4)

	screen := core.NewScreen(80, 24)
	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		g.Step(input)
		g.Render(screen)
	}
}
