package config

// SnakeTuning holds the numeric constants for one Snake difficulty level.
type SnakeTuning struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // ticks between grid moves (lower = faster)
	StartLength    int `yaml:"start_length"`     // initial snake length in cells
	GrowthPerFood  int `yaml:"growth_per_food"`  // segments gained per food eaten
}

// SnakeConfig maps every difficulty label to its tuning block.
type SnakeConfig struct {
	Easy   SnakeTuning `yaml:"easy"`
	Normal SnakeTuning `yaml:"normal"`
	Hard   SnakeTuning `yaml:"hard"`
}

// Tuning returns the block for the given difficulty.
func (c SnakeConfig) Tuning(d Difficulty) SnakeTuning {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyHard:
		return c.Hard
	default:
		return c.Normal
	}
}

// FlappyTuning holds the numeric constants for one Flappy difficulty level.
type FlappyTuning struct {
	Gravity      float64 `yaml:"gravity"`        // downward acceleration per tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // upward velocity on flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity
	ScrollSpeed  float64 `yaml:"scroll_speed"`   // pipe movement in cells per tick
	PipeWidth    int     `yaml:"pipe_width"`
	PipeSpacing  int     `yaml:"pipe_spacing"` // horizontal cells between pipes
	GapSize      int     `yaml:"gap_size"`     // passable gap height
	TopMargin    int     `yaml:"top_margin"`   // minimum cells above the gap
	BottomMargin int     `yaml:"bottom_margin"`
}

// FlappyConfig maps every difficulty label to its tuning block.
type FlappyConfig struct {
	Easy   FlappyTuning `yaml:"easy"`
	Normal FlappyTuning `yaml:"normal"`
	Hard   FlappyTuning `yaml:"hard"`
}

// Tuning returns the block for the given difficulty.
func (c FlappyConfig) Tuning(d Difficulty) FlappyTuning {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyHard:
		return c.Hard
	default:
		return c.Normal
	}
}

// RacerTuning holds the numeric constants for one Racer difficulty level.
type RacerTuning struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // traffic movement in cells per tick
	SpawnChance float64 `yaml:"spawn_chance"` // per-tick probability of a new car
	MinHeadway  int     `yaml:"min_headway"`  // vertical cells kept clear below a spawn
	Lanes       int     `yaml:"lanes"`
}

// RacerConfig maps every difficulty label to its tuning block.
type RacerConfig struct {
	Easy   RacerTuning `yaml:"easy"`
	Normal RacerTuning `yaml:"normal"`
	Hard   RacerTuning `yaml:"hard"`
}

// Tuning returns the block for the given difficulty.
func (c RacerConfig) Tuning(d Difficulty) RacerTuning {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyHard:
		return c.Hard
	default:
		return c.Normal
	}
}

// TicTacToeTuning holds the numeric constants for one Tic-Tac-Toe
// difficulty level.
type TicTacToeTuning struct {
	// Obedience is the probability the CPU follows its heuristic chain on
	// a given turn instead of playing a uniformly random legal move.
	// 1.0 means the chain is always used.
	Obedience float64 `yaml:"obedience"`
}

// TicTacToeConfig maps every difficulty label to its tuning block.
type TicTacToeConfig struct {
	Easy   TicTacToeTuning `yaml:"easy"`
	Normal TicTacToeTuning `yaml:"normal"`
	Hard   TicTacToeTuning `yaml:"hard"`
}

// Tuning returns the block for the given difficulty.
func (c TicTacToeConfig) Tuning(d Difficulty) TicTacToeTuning {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyHard:
		return c.Hard
	default:
		return c.Normal
	}
}
