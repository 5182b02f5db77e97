package snake

import "github.com/miniarcade/arcade-hub/internal/core"

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Phase     core.Phase
	Len       int
	Head      core.Point
	Dir       Direction
	Food      core.Point
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		Phase:     g.phase,
		Len:       len(g.snake),
		Head:      head,
		Dir:       g.direction,
		Food:      g.food,
	}
}
