package colorstack

// Phase is the coarse game state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseInProgress
	PhaseDied
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseDied:
		return "died"
	default:
		return "unknown"
	}
}

// State is the controller state. LastTouchY is meaningful only while
// InProgress with HasTouch set; every transition builds a new value.
type State struct {
	Phase      Phase
	LastTouchY float64
	HasTouch   bool
}

func idleState() State       { return State{Phase: PhaseIdle} }
func diedState() State       { return State{Phase: PhaseDied} }
func inProgressState() State { return State{Phase: PhaseInProgress} }

func (s State) withTouch(y float64) State {
	return State{Phase: s.Phase, LastTouchY: y, HasTouch: true}
}

func (s State) withoutTouch() State {
	return State{Phase: s.Phase}
}
