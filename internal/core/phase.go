package core

// Phase is the lifecycle state of a game session. Every game owns exactly
// one Phase and moves it only along the allowed edges:
//
//	menu → playing
//	playing ↔ paused
//	playing → ended
//	ended → menu | playing
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// CanTransition reports whether the edge p → to is allowed.
func (p Phase) CanTransition(to Phase) bool {
	switch p {
	case PhaseMenu:
		return to == PhasePlaying
	case PhasePlaying:
		return to == PhasePaused || to == PhaseEnded
	case PhasePaused:
		return to == PhasePlaying
	case PhaseEnded:
		return to == PhaseMenu || to == PhasePlaying
	default:
		return false
	}
}

// Transition returns the target phase when the edge is allowed, otherwise
// the current phase unchanged. Games route every phase change through this
// so an illegal edge can never be taken.
func Transition(from, to Phase) Phase {
	if from.CanTransition(to) {
		return to
	}
	return from
}
