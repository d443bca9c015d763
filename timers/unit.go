package timers

// Unit is a time unit in which derived timer values can be expressed.
// Its zero value has no meaning and should not be used; [Unit.Convert]
// treats it as [Nanoseconds].
type Unit int64

const (
	Nanoseconds  Unit = 1
	Microseconds Unit = 1000 * Nanoseconds
	Milliseconds Unit = 1000 * Microseconds
	Seconds      Unit = 1000 * Milliseconds
	Minutes      Unit = 60 * Seconds
	Hours        Unit = 60 * Minutes
)

// Convert expresses a nanosecond value in unit u, truncating toward
// zero.
func (u Unit) Convert(ns int64) int64 {
	if u <= Nanoseconds {
		return ns
	}
	return ns / int64(u)
}

// String returns the display name of the unit.
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	}
	return "unknown"
}
