// Command timerdemo drives a set of timer scenarios against the
// default registry and prints each timer's diagnostic representation
// followed by a tabular report in microseconds.
package main

import (
	"fmt"
	"time"

	"github.com/bgilmour/timers/timers"
)

const step = 50 * time.Millisecond

func main() {
	fmt.Println("Timers")
	fmt.Println("------")

	run("scenario 1: start - stop", func(t *timers.Timer) {
		must(t.Start())
		time.Sleep(step)
		must(t.Stop())
	})

	run("scenario 2: start - split - stop", func(t *timers.Timer) {
		must(t.Start())
		time.Sleep(step)
		must(t.Split("split1"))
		time.Sleep(step)
		must(t.Stop())
	})

	run("scenario 3: start - pause - resume - stop", func(t *timers.Timer) {
		must(t.Start())
		time.Sleep(step)
		must(t.Pause())
		time.Sleep(step)
		must(t.Resume())
		time.Sleep(step)
		must(t.Stop())
	})

	run("scenario 4: start - pause - stop", func(t *timers.Timer) {
		must(t.Start())
		time.Sleep(step)
		must(t.Pause())
		time.Sleep(step)
		must(t.Stop())
	})

	run("scenario 5: start - split - pause - resume - stop", func(t *timers.Timer) {
		must(t.Start())
		time.Sleep(step)
		must(t.Split("split1"))
		time.Sleep(step)
		must(t.Pause())
		time.Sleep(step)
		must(t.Resume())
		time.Sleep(step)
		must(t.Stop())
	})

	run("scenario 6: start - split - pause - stop", func(t *timers.Timer) {
		must(t.Start())
		time.Sleep(step)
		must(t.Split("split1"))
		time.Sleep(step)
		must(t.Pause())
		time.Sleep(step)
		must(t.Stop())
	})

	run("scenario 7: start - split - pause - resume - pause - resume - split - pause - resume - stop", func(t *timers.Timer) {
		must(t.Start())
		time.Sleep(step)
		must(t.Split("split1"))
		time.Sleep(step)
		must(t.Pause())
		time.Sleep(step)
		must(t.Resume())
		time.Sleep(step)
		must(t.Pause())
		time.Sleep(step)
		must(t.Resume())
		time.Sleep(step)
		must(t.Split("split2"))
		time.Sleep(step)
		must(t.Pause())
		time.Sleep(step)
		must(t.Resume())
		time.Sleep(step)
		must(t.Stop())
	})
}

func run(name string, scenario func(*timers.Timer)) {
	t := timers.CreateTimer(name)
	t.Reset()
	scenario(t)

	fmt.Printf("timer => %s\n", t.Format(timers.Microseconds))

	if err := timers.NewPresenter(timers.Microseconds).Print(t); err != nil {
		fmt.Printf("report failed: %v\n", err)
	}
	fmt.Println()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
