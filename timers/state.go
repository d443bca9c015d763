package timers

// State identifies the lifecycle phase of a [Timer].
type State int

const (
	Uninitialised State = iota
	Running
	Paused
	Stopped
)

// String returns the display name of the timer state.
func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Action identifies an operation applied to a [Timer]. The boundary
// actions (start, split, stop) each open a new segment; pause and
// resume are recorded inside the segment they interrupt.
type Action int

const (
	ActionReset Action = iota
	ActionStart
	ActionSplit
	ActionPause
	ActionResume
	ActionStop
)

// String returns the display name of the timer action.
func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	case ActionStart:
		return "start"
	case ActionSplit:
		return "split"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	case ActionStop:
		return "stop"
	}
	return "unknown"
}
