package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultSnakeConfig returns the compiled-in Snake difficulty table, used
// as the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Easy:   SnakeTuning{MoveEveryTicks: 9, StartLength: 3, GrowthPerFood: 1},
		Normal: SnakeTuning{MoveEveryTicks: 6, StartLength: 3, GrowthPerFood: 1},
		Hard:   SnakeTuning{MoveEveryTicks: 4, StartLength: 4, GrowthPerFood: 2},
	}
}

// DefaultFlappyConfig returns the compiled-in Flappy difficulty table.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Easy: FlappyTuning{
			Gravity: 0.18, JumpImpulse: -1.4, MaxFallSpeed: 2.4, ScrollSpeed: 0.5,
			PipeWidth: 5, PipeSpacing: 44, GapSize: 12, TopMargin: 3, BottomMargin: 3,
		},
		Normal: FlappyTuning{
			Gravity: 0.25, JumpImpulse: -1.8, MaxFallSpeed: 3.0, ScrollSpeed: 0.8,
			PipeWidth: 5, PipeSpacing: 40, GapSize: 10, TopMargin: 3, BottomMargin: 3,
		},
		Hard: FlappyTuning{
			Gravity: 0.32, JumpImpulse: -2.0, MaxFallSpeed: 3.6, ScrollSpeed: 1.1,
			PipeWidth: 5, PipeSpacing: 34, GapSize: 8, TopMargin: 2, BottomMargin: 2,
		},
	}
}

// DefaultRacerConfig returns the compiled-in Racer difficulty table.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Easy:   RacerTuning{ScrollSpeed: 0.4, SpawnChance: 0.03, MinHeadway: 8, Lanes: 3},
		Normal: RacerTuning{ScrollSpeed: 0.6, SpawnChance: 0.05, MinHeadway: 6, Lanes: 3},
		Hard:   RacerTuning{ScrollSpeed: 0.9, SpawnChance: 0.08, MinHeadway: 5, Lanes: 4},
	}
}

// DefaultTicTacToeConfig returns the compiled-in Tic-Tac-Toe table.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Easy:   TicTacToeTuning{Obedience: 0.4},
		Normal: TicTacToeTuning{Obedience: 0.75},
		Hard:   TicTacToeTuning{Obedience: 1.0},
	}
}
