package tictactoe

import "math/rand"

// Mark is the content of one board cell.
type Mark byte

const (
	Empty Mark = iota
	PlayerMark
	CPUMark
)

func (m Mark) String() string {
	switch m {
	case PlayerMark:
		return "X"
	case CPUMark:
		return "O"
	default:
		return " "
	}
}

// Board is the fixed 3x3 grid, row-major.
type Board [9]Mark

// lines are all eight three-in-a-row index triples.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// corners in heuristic preference order (fixed, not randomized, so the
// chain is deterministic for a given board).
var corners = [4]int{0, 2, 6, 8}

const center = 4

// Winner returns the mark holding a complete line, or Empty.
func (b Board) Winner() Mark {
	for _, l := range lines {
		if b[l[0]] != Empty && b[l[0]] == b[l[1]] && b[l[1]] == b[l[2]] {
			return b[l[0]]
		}
	}
	return Empty
}

// Full reports whether no empty cell remains.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Legal returns the indices of all empty cells.
func (b Board) Legal() []int {
	var out []int
	for i, m := range b {
		if m == Empty {
			out = append(out, i)
		}
	}
	return out
}

// winningCell returns a cell that completes three-in-a-row for the given
// mark, or -1.
func (b Board) winningCell(m Mark) int {
	for _, l := range lines {
		count, empty := 0, -1
		for _, i := range l {
			switch b[i] {
			case m:
				count++
			case Empty:
				empty = i
			}
		}
		if count == 2 && empty >= 0 {
			return empty
		}
	}
	return -1
}

// HeuristicMove is the CPU's fixed-priority rule chain, evaluated fresh
// each turn: win now, block the opponent's win, take the center, take a
// corner, take anything. It assumes at least one legal move exists.
func HeuristicMove(b Board, cpu Mark) int {
	opponent := PlayerMark
	if cpu == PlayerMark {
		opponent = CPUMark
	}

	if cell := b.winningCell(cpu); cell >= 0 {
		return cell
	}
	if cell := b.winningCell(opponent); cell >= 0 {
		return cell
	}
	if b[center] == Empty {
		return center
	}
	for _, c := range corners {
		if b[c] == Empty {
			return c
		}
	}
	legal := b.Legal()
	if len(legal) == 0 {
		return -1
	}
	return legal[0]
}

// cpuMove picks the CPU's cell: with probability obedience it follows the
// heuristic chain, otherwise it plays a uniformly random legal move.
// Difficulty only perturbs this ratio; there is no deeper search.
func cpuMove(b Board, cpu Mark, rng *rand.Rand, obedience float64) int {
	legal := b.Legal()
	if len(legal) == 0 {
		return -1
	}
	if rng.Float64() < obedience {
		return HeuristicMove(b, cpu)
	}
	return legal[rng.Intn(len(legal))]
}
