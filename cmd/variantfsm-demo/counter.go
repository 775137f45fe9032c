package main

import "github.com/librescoot/variantfsm"

type (
	Idle     struct{}
	Counting struct{ Count int }
	Done     struct {
		Reached bool
		Count   int
	}

	counter = variantfsm.Union3[Idle, Counting, Done]
)

// counterHandlers builds the counter's handlers. onStart runs every time
// the machine leaves Idle.
func counterHandlers(threshold int, onStart func()) (variantfsm.Transition[counter], variantfsm.Action[counter]) {
	next := variantfsm.Must(variantfsm.Next3(
		func(Idle) counter {
			onStart()
			return counter{}.With2(Counting{})
		},
		func(c Counting) counter {
			if c.Count > threshold {
				return counter{}.With3(Done{Reached: true, Count: c.Count})
			}
			return counter{}.With2(c)
		},
		func(d Done) counter { return counter{}.With3(d) },
	))

	act := variantfsm.Must(variantfsm.Act3(
		variantfsm.Stay[Idle],
		func(c *Counting) { c.Count++ },
		variantfsm.Stay[Done],
	))

	return next, act
}
