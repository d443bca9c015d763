package timers

import (
	"bytes"
	"fmt"
	"time"
)

// base reference for monotonic nanosecond readings shared by all
// timers in the process.
var processStart = time.Now()

func nanotime() int64 {
	return time.Since(processStart).Nanoseconds()
}

// event is one recorded (action, timestamp) pair.
type event struct {
	action Action
	nanos  int64
}

// segment spans the time between two consecutive boundary actions.
// The first event is always the boundary that opened the segment;
// subsequent events are alternating pause/resume pairs.
type segment struct {
	label  string
	events []event
}

// name returns the assigned label of the segment, or the display name
// of its opening action if no label was given.
func (s *segment) name() string {
	if s.label != "" {
		return s.label
	}
	return s.events[0].action.String()
}

// pauses returns the total time the timer spent paused within s. An
// unterminated trailing pause contributes nothing; stop closes any
// open pause before the final segment is appended.
func (s *segment) pauses() int64 {
	var total int64
	for i := 1; i+1 < len(s.events); i += 2 {
		total += s.events[i+1].nanos - s.events[i].nanos
	}
	return total
}

// # Timer
//
// Represents a nanosecond-resolution interval timer driven through the
// states uninitialised -> running -> {paused <-> running} -> stopped.
// Derived metrics are only available once the timer is stopped and are
// computed lazily on first access.
//
// A Timer belongs to a single logical flow: no internal locking is
// performed. Its zero value has no meaning and should not be used; a
// Timer should always be instantiated using [NewTimer], [NewNamedTimer]
// or [Registry.CreateTimer].
type Timer struct {
	name  string
	state State

	segments []*segment

	// derived values, computed lazily once stopped, discarded on Reset
	elapsed      *int64
	splitTimes   []int64
	splitPeriods []int64

	now func() int64
}

// NewTimer returns a new unnamed timer in the uninitialised state.
func NewTimer() *Timer {
	return NewNamedTimer("")
}

// NewNamedTimer returns a new timer named name in the uninitialised
// state.
func NewNamedTimer(name string) *Timer {
	return &Timer{
		name: name,
		now:  nanotime,
	}
}

// Name returns the display name given to the timer at creation.
func (t *Timer) Name() string {
	return t.name
}

// State returns the current state of the timer.
func (t *Timer) State() State {
	return t.state
}

// Start starts an uninitialised timer, opening its first segment. An
// optional label names that segment. Starting a timer in any other
// state fails with an [InvalidStateError].
func (t *Timer) Start(label ...string) error {
	now := t.now()
	if t.state != Uninitialised {
		return &InvalidStateError{Op: "start", State: t.state, Require: "uninitialised"}
	}
	t.segments = nil
	t.openSegment(ActionStart, now, pickLabel(label))
	t.state = Running
	return nil
}

// Split closes the current segment and opens a new one. An optional
// label names the new segment. Splitting a paused timer first records
// the resume that ends the pause. Splitting a timer that is neither
// running nor paused fails with an [InvalidStateError].
func (t *Timer) Split(label ...string) error {
	now := t.now()
	if t.state != Running && t.state != Paused {
		return &InvalidStateError{Op: "split", State: t.state, Require: "running or paused"}
	}
	if t.state == Paused {
		t.closePause(now)
	}
	t.openSegment(ActionSplit, now, pickLabel(label))
	return nil
}

// Pause suspends the timer. Time between a pause and the matching
// resume contributes to no derived metric. Pausing an already paused
// timer is a no-op; pausing a timer that is neither running nor paused
// fails with an [InvalidStateError].
func (t *Timer) Pause() error {
	now := t.now()
	if t.state != Running && t.state != Paused {
		return &InvalidStateError{Op: "pause", State: t.state, Require: "running or paused"}
	}
	if t.state == Running {
		cur := t.tail()
		cur.events = append(cur.events, event{ActionPause, now})
		t.state = Paused
	}
	return nil
}

// Resume ends the current pause. Resuming a timer that is already
// running is a no-op; resuming a timer that is neither running nor
// paused fails with an [InvalidStateError].
func (t *Timer) Resume() error {
	now := t.now()
	if t.state != Running && t.state != Paused {
		return &InvalidStateError{Op: "resume", State: t.state, Require: "running or paused"}
	}
	if t.state == Paused {
		t.closePause(now)
	}
	return nil
}

// Stop stops a running or paused timer, appending the final segment.
// An optional label names that segment. Stopping a paused timer first
// records the resume that ends the pause, so the final segment never
// carries an open pause. Stopping a timer in any other state fails
// with an [InvalidStateError].
func (t *Timer) Stop(label ...string) error {
	now := t.now()
	if t.state != Running && t.state != Paused {
		return &InvalidStateError{Op: "stop", State: t.state, Require: "running or paused"}
	}
	if t.state == Paused {
		t.closePause(now)
	}
	t.openSegment(ActionStop, now, pickLabel(label))
	t.state = Stopped
	return nil
}

// Reset returns the timer to the uninitialised state from any state,
// discarding the recorded segments and any derived values. It never
// fails and is a no-op on a timer that is already uninitialised.
func (t *Timer) Reset() {
	t.state = Uninitialised
	t.segments = nil
	t.elapsed = nil
	t.splitTimes = nil
	t.splitPeriods = nil
}

// ElapsedTime returns the nanoseconds the timer spent running between
// start and stop, excluding paused intervals. It fails with an
// [InvalidStateError] unless the timer is stopped.
func (t *Timer) ElapsedTime() (int64, error) {
	if t.state != Stopped {
		return 0, &InvalidStateError{Op: "elapsed time", State: t.state, Require: "stopped"}
	}
	if t.elapsed == nil {
		first := t.segments[0].events[0].nanos
		last := t.tail().events[0].nanos
		e := last - first - t.allPauses()
		t.elapsed = &e
	}
	return *t.elapsed, nil
}

// ElapsedTimeIn is [Timer.ElapsedTime] expressed in unit u.
func (t *Timer) ElapsedTimeIn(u Unit) (int64, error) {
	ns, err := t.ElapsedTime()
	if err != nil {
		return 0, err
	}
	return u.Convert(ns), nil
}

// SplitTimes returns, in nanoseconds, the elapsed time from the start
// to each recorded boundary (every split and the final stop), each net
// of all pauses up to that boundary. It fails with an
// [InvalidStateError] unless the timer is stopped.
func (t *Timer) SplitTimes() ([]int64, error) {
	if t.state != Stopped {
		return nil, &InvalidStateError{Op: "split times", State: t.state, Require: "stopped"}
	}
	if t.splitTimes == nil {
		times := make([]int64, len(t.segments)-1)
		start := t.segments[0].events[0].nanos
		var pauses int64
		for i := 1; i < len(t.segments); i++ {
			pauses += t.segments[i-1].pauses()
			times[i-1] = t.segments[i].events[0].nanos - start - pauses
		}
		t.splitTimes = times
	}
	return t.splitTimes, nil
}

// SplitTimesIn is [Timer.SplitTimes] expressed in unit u.
func (t *Timer) SplitTimesIn(u Unit) ([]int64, error) {
	times, err := t.SplitTimes()
	if err != nil {
		return nil, err
	}
	converted := make([]int64, len(times))
	for i, v := range times {
		converted[i] = u.Convert(v)
	}
	return converted, nil
}

// SplitTime returns the split time at index in nanoseconds. It fails
// with an [InvalidStateError] unless the timer is stopped, and with an
// [IndexOutOfRangeError] if index is outside the derived values.
func (t *Timer) SplitTime(index int) (int64, error) {
	times, err := t.SplitTimes()
	if err != nil {
		return 0, err
	}
	if err := t.checkIndex(index); err != nil {
		return 0, err
	}
	return times[index], nil
}

// SplitTimeIn is [Timer.SplitTime] expressed in unit u.
func (t *Timer) SplitTimeIn(index int, u Unit) (int64, error) {
	ns, err := t.SplitTime(index)
	if err != nil {
		return 0, err
	}
	return u.Convert(ns), nil
}

// SplitTimeWithName returns the split time at index formatted as
// "label[value unit]", where label falls back to the display name of
// the action that opened the segment if none was assigned.
func (t *Timer) SplitTimeWithName(index int, u Unit) (string, error) {
	ns, err := t.SplitTime(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%d %s]", t.segments[index].name(), u.Convert(ns), u), nil
}

// SplitPeriods returns, in nanoseconds, the net active duration of
// each segment alone: the time between consecutive boundaries minus
// that segment's own pause time. It fails with an [InvalidStateError]
// unless the timer is stopped.
func (t *Timer) SplitPeriods() ([]int64, error) {
	if t.state != Stopped {
		return nil, &InvalidStateError{Op: "split periods", State: t.state, Require: "stopped"}
	}
	if t.splitPeriods == nil {
		periods := make([]int64, len(t.segments)-1)
		for i := 1; i < len(t.segments); i++ {
			prev := t.segments[i-1]
			periods[i-1] = t.segments[i].events[0].nanos - prev.events[0].nanos - prev.pauses()
		}
		t.splitPeriods = periods
	}
	return t.splitPeriods, nil
}

// SplitPeriodsIn is [Timer.SplitPeriods] expressed in unit u.
func (t *Timer) SplitPeriodsIn(u Unit) ([]int64, error) {
	periods, err := t.SplitPeriods()
	if err != nil {
		return nil, err
	}
	converted := make([]int64, len(periods))
	for i, v := range periods {
		converted[i] = u.Convert(v)
	}
	return converted, nil
}

// SplitPeriod returns the split period at index in nanoseconds. It
// fails with an [InvalidStateError] unless the timer is stopped, and
// with an [IndexOutOfRangeError] if index is outside the derived
// values.
func (t *Timer) SplitPeriod(index int) (int64, error) {
	periods, err := t.SplitPeriods()
	if err != nil {
		return 0, err
	}
	if err := t.checkIndex(index); err != nil {
		return 0, err
	}
	return periods[index], nil
}

// SplitPeriodIn is [Timer.SplitPeriod] expressed in unit u.
func (t *Timer) SplitPeriodIn(index int, u Unit) (int64, error) {
	ns, err := t.SplitPeriod(index)
	if err != nil {
		return 0, err
	}
	return u.Convert(ns), nil
}

// SplitPeriodWithName returns the split period at index formatted as
// "label[value unit]", where label falls back to the display name of
// the action that opened the segment if none was assigned.
func (t *Timer) SplitPeriodWithName(index int, u Unit) (string, error) {
	ns, err := t.SplitPeriod(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%d %s]", t.segments[index].name(), u.Convert(ns), u), nil
}

func (t *Timer) String() string {
	return t.Format(Nanoseconds)
}

// Format creates a string representation of the timer with the elapsed
// time expressed in unit u: a description of the recorded activity if
// the timer is stopped, the current state otherwise.
func (t *Timer) Format(u Unit) string {
	if t.state != Stopped {
		return "timer " + t.state.String()
	}

	elapsed, _ := t.ElapsedTimeIn(u)

	b := bytes.NewBufferString("{\n")
	b.WriteString(fmt.Sprintf("  name: %q,\n", t.name))
	b.WriteString(fmt.Sprintf("  elapsed: %d %s,\n", elapsed, u))
	b.WriteString("  splits: [\n")
	for i, seg := range t.segments {
		b.WriteString("    {\n")
		b.WriteString(fmt.Sprintf("      name: %s,\n", seg.name()))
		b.WriteString("      actions: [")
		for j, ev := range seg.events {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%s(%d)", ev.action, ev.nanos))
		}
		b.WriteString("],\n")
		b.WriteString(fmt.Sprintf("      paused: %d\n", seg.pauses()))
		b.WriteString("    }")
		if i < len(t.segments)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ]\n}")

	return b.String()
}

// tail returns the most recently opened segment.
func (t *Timer) tail() *segment {
	return t.segments[len(t.segments)-1]
}

func (t *Timer) openSegment(a Action, now int64, label string) {
	seg := &segment{label: label}
	seg.events = append(seg.events, event{a, now})
	t.segments = append(t.segments, seg)
}

// closePause records the resume that ends the current pause interval.
func (t *Timer) closePause(now int64) {
	cur := t.tail()
	cur.events = append(cur.events, event{ActionResume, now})
	t.state = Running
}

// allPauses sums pause time over every segment except the final stop
// boundary, which holds no countable pause of its own.
func (t *Timer) allPauses() int64 {
	var total int64
	for _, seg := range t.segments[:len(t.segments)-1] {
		total += seg.pauses()
	}
	return total
}

func (t *Timer) checkIndex(index int) error {
	if bound := len(t.segments) - 1; index < 0 || index >= bound {
		return &IndexOutOfRangeError{Index: index, Bound: bound}
	}
	return nil
}

func pickLabel(label []string) string {
	if len(label) > 0 {
		return label[0]
	}
	return ""
}
