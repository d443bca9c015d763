// Package timers provides lightweight, high-resolution interval timers.
//
// A [Timer] records nanosecond timestamps across a sequence of actions:
// a start, optional intermediate splits, any number of pause/resume
// pairs, and a stop. Once stopped it derives the total elapsed time,
// the split times, and the split periods, each convertible to an
// arbitrary [Unit]. An example lifecycle may be:
//
//	t := timers.NewNamedTimer("ingest")
//	t.Start()
//	// ... phase one ...
//	t.Split("parse")
//	// ... phase two ...
//	t.Stop()
//	elapsed, err := t.ElapsedTimeIn(timers.Microseconds)
//
// Timers can be created and looked up by name through a [Registry],
// and a stopped timer's metrics are presented in a tabular manner
// using a [Presenter].
package timers

import (
	"os"

	"golang.org/x/exp/slog"
)

func init() {
	logLevel = new(slog.LevelVar)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(h)
}

var (
	logger   *slog.Logger
	logLevel *slog.LevelVar
)

// SetLogger sets the logger used by timers.
// [SetLogLevel] will not be enforced if a custom logger is used.
func SetLogger(newlogger *slog.Logger) {
	logger = newlogger
}

// SetLogLevel sets the level for timers messages unless [SetLogger] has been called.
// The default log level is the zero value of [slog.LevelVar].
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
