package timers

import "fmt"

// InvalidStateError reports a timer operation invoked in a state that
// forbids it. The timer is left unchanged when this error is returned.
type InvalidStateError struct {
	Op      string // the rejected operation
	State   State  // the timer's state at the time of the call
	Require string // the state(s) the operation needs
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("timer %s: state is %s, requires %s", e.Op, e.State, e.Require)
}

// IndexOutOfRangeError reports a split index outside the range of
// values derived by a stopped timer.
type IndexOutOfRangeError struct {
	Index int // the offending index
	Bound int // the exclusive upper bound
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("split index %d out of range [0, %d)", e.Index, e.Bound)
}
