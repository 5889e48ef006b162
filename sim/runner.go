// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim runs a machine over batches of input strings.
package sim

import (
	"log"

	"gopkg.in/tomb.v2"

	"github.com/ezrec/utm/machine"
)

// Result is the outcome of simulating one input string.
type Result struct {
	Input    string   // The simulated input string.
	Trace    []string // Instantaneous descriptions, initial configuration first.
	Accepted bool     // Whether the machine accepted.
	Steps    int      // Executed steps; always len(Trace)-1.
}

// Runner simulates a machine over input strings. Jobs bounds how many
// simulations run at once; zero or one means sequential. Runs share only
// the read-only Machine, so every Jobs value yields the same results.
type Runner struct {
	Verbose bool // Set to true to log each input as it completes.
	Jobs    int  // Simultaneous simulations.
	Machine *machine.Machine
}

// NewRunner creates a sequential runner for a machine.
func NewRunner(m *machine.Machine) (r *Runner) {
	r = &Runner{
		Jobs:    1,
		Machine: m,
	}

	return
}

// Run simulates every input. Results are indexed like inputs, regardless
// of completion order.
func (r *Runner) Run(inputs []string) (results []Result) {
	results = make([]Result, len(inputs))

	jobs := r.Jobs
	if jobs > len(inputs) {
		jobs = len(inputs)
	}

	if jobs <= 1 {
		for n, input := range inputs {
			results[n] = r.simulate(input)
		}

		return
	}

	var tb tomb.Tomb
	pending := make(chan int)

	tb.Go(func() error {
		defer close(pending)
		for n := range inputs {
			select {
			case pending <- n:
			case <-tb.Dying():
				return tomb.ErrDying
			}
		}

		return nil
	})

	for range jobs {
		tb.Go(func() error {
			for n := range pending {
				results[n] = r.simulate(inputs[n])
			}

			return nil
		})
	}

	_ = tb.Wait()

	return
}

// simulate runs one input on the shared machine.
func (r *Runner) simulate(input string) (result Result) {
	trace, accepted := r.Machine.Simulate(input)

	result = Result{
		Input:    input,
		Trace:    trace,
		Accepted: accepted,
		Steps:    len(trace) - 1,
	}

	if r.Verbose {
		log.Printf("input '%v': accepted=%v steps=%v", input, result.Accepted, result.Steps)
	}

	return
}
