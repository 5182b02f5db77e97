package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userConfigPath returns the per-user config path for a table file, or ""
// when the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade-hub", "configs", filename)
}

// load resolves a difficulty table. Search order: explicit custom path
// (errors are reported), then ~/.arcade-hub/configs/<name>, then
// ./configs/<name>, then the embedded default. A parse failure in an
// optional location falls through to the next one.
func load[T any](name, customPath string, embedded []byte, fallback T) (T, error) {
	var cfg T

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback, nil
	}
	return cfg, nil
}

// LoadSnake loads the Snake difficulty table.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load(snakeFile, customPath, defaultSnakeYAML, DefaultSnakeConfig())
}

// LoadFlappy loads the Flappy difficulty table.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load(flappyFile, customPath, defaultFlappyYAML, DefaultFlappyConfig())
}

// LoadRacer loads the Racer difficulty table.
func LoadRacer(customPath string) (RacerConfig, error) {
	return load(racerFile, customPath, defaultRacerYAML, DefaultRacerConfig())
}

// LoadTicTacToe loads the Tic-Tac-Toe difficulty table.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return load(tictactoeFile, customPath, defaultTicTacToeYAML, DefaultTicTacToeConfig())
}

const (
	snakeFile     = "snake.yaml"
	flappyFile    = "flappy.yaml"
	racerFile     = "racer.yaml"
	tictactoeFile = "tictactoe.yaml"
)
