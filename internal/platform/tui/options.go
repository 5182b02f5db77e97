package tui

import (
	"github.com/miniarcade/arcade-hub/internal/games/flappy"
	"github.com/miniarcade/arcade-hub/internal/games/racer"
	"github.com/miniarcade/arcade-hub/internal/games/snake"
	"github.com/miniarcade/arcade-hub/internal/games/tictactoe"
)

// ApplyGameOptions forwards difficulty and config-path options to the
// matching game package before the game is created. Unknown game IDs are
// ignored so callers can pass options through unconditionally.
func ApplyGameOptions(gameID, difficulty, configPath string) {
	switch gameID {
	case "snake":
		snake.SetDifficulty(difficulty)
		snake.SetConfigPath(configPath)
	case "flappy":
		flappy.SetDifficulty(difficulty)
		flappy.SetConfigPath(configPath)
	case "racer":
		racer.SetDifficulty(difficulty)
		racer.SetConfigPath(configPath)
	case "tictactoe":
		tictactoe.SetDifficulty(difficulty)
		tictactoe.SetConfigPath(configPath)
	}
}
