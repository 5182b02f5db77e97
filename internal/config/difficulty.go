// Package config provides the difficulty tables for the arcade games:
// a closed set of difficulty labels, each mapping to a small block of named
// numeric constants consumed once at game start. Tables are YAML files with
// embedded defaults.
package config

import "strings"

// Difficulty is one of the closed set of difficulty labels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all labels in ascending difficulty order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty maps a user-supplied label to a Difficulty. Unknown or
// empty labels fall back to normal, so an out-of-range selection can never
// reach a game.
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(s)); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d
	default:
		return DifficultyNormal
	}
}
