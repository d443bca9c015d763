package timers

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"golang.org/x/exp/slog"
)

// # Presenter
//
// Renders the derived metrics of a stopped [Timer] as a table: one row
// per derived index with the segment name, split time, split period,
// and pause total, headed by a title line carrying the elapsed time.
// A Presenter is read-only and never mutates the timers it prints.
// Its zero value has no meaning and should not be used; a Presenter
// should always be instantiated using [NewPresenter].
type Presenter struct {
	unit Unit
	out  io.Writer
}

// NewPresenter returns a presenter that expresses values in unit u and
// writes to standard output.
func NewPresenter(u Unit) *Presenter {
	return &Presenter{
		unit: u,
		out:  os.Stdout,
	}
}

// WithWriter modifies and returns p, directing its output to w.
func (p *Presenter) WithWriter(w io.Writer) *Presenter {
	p.out = w
	return p
}

// Print renders the metrics of timer t. It fails with the timer's own
// [InvalidStateError] if t is not stopped, writing nothing.
func (p *Presenter) Print(t *Timer) error {
	elapsed, err := t.ElapsedTimeIn(p.unit)
	if err != nil {
		logger.Error("presenter requires a stopped timer",
			slog.String("timer", t.Name()),
			slog.String("state", t.State().String()))
		return err
	}

	times, err := t.SplitTimesIn(p.unit)
	if err != nil {
		return err
	}
	periods, err := t.SplitPeriodsIn(p.unit)
	if err != nil {
		return err
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()

	tbl := table.New(
		"split",
		"name",
		"split time",
		"split period",
		"paused",
	)
	tbl.WithHeaderFormatter(headerFmt).WithWriter(p.out)

	for i := range times {
		seg := t.segments[i]
		tbl.AddRow(i, seg.name(), times[i], periods[i], p.unit.Convert(seg.pauses()))
	}

	title := color.New(color.FgGreen).Add(color.Bold)
	title.Fprintf(p.out, "\n⏱ Timer %s: %d %s\n", t.Name(), elapsed, p.unit)
	tbl.Print()

	return nil
}
