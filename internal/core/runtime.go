package core

// RuntimeConfig is passed to games at Reset. Games use it to adapt to the
// screen size and to seed their RNG deterministically.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // simulation ticks per second
	Seed     int64 // 0 means the platform picks a time-based seed
}

// DefaultRuntimeConfig returns sensible defaults for an 80x24 terminal.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible state of a game, returned by State()
// and carried on every StepResult.
type GameState struct {
	Score     int
	HighScore int // best score this session, never persisted
	Phase     Phase
}

// GameOver reports whether the session has reached its terminal phase.
func (s GameState) GameOver() bool { return s.Phase == PhaseEnded }

// Paused reports whether the session is paused.
func (s GameState) Paused() bool { return s.Phase == PhasePaused }

// StepResult is returned by Game.Step after each simulation tick.
// Notices are ephemeral messages (new high score, round outcome) the
// platform shows as a transient toast; they carry no game logic.
type StepResult struct {
	State   GameState
	Notices []string
}
