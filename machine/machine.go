package machine

import (
	"log"

	"github.com/ezrec/utm/tape"
)

// STEP_LIMIT is the default bound on executed steps per simulation. A
// machine still running after that many steps is reported as rejecting.
const STEP_LIMIT = 10000

// Machine executes a Definition. Adjust MaxSteps and Verbose before use;
// during Simulate the Machine is read-only, so one Machine may serve any
// number of concurrent simulations.
type Machine struct {
	Verbose    bool // Set to true to enable step logging.
	MaxSteps   int  // Bound on executed steps per simulation.
	Definition *Definition
}

// New creates a machine for a definition, with the default step bound.
func New(def *Definition) (m *Machine) {
	m = &Machine{
		MaxSteps:   STEP_LIMIT,
		Definition: def,
	}

	return
}

// run is the mutable state of a single simulation: one tape, the head
// position on it, the current state, and the cache register.
type run struct {
	tape  *tape.Tape
	head  int
	state string
	cache tape.Symbol
}

// describe snapshots the run as an instantaneous description.
func (r *run) describe() string {
	return Describe(r.tape, r.head, r.state, r.cache)
}

// Simulate runs the machine over an input string. It returns the trace of
// instantaneous descriptions, one per executed step plus the initial
// configuration, and whether the machine accepted.
//
// The machine accepts as soon as a step enters the final state. It rejects
// when no rule applies to the current configuration, or when MaxSteps
// steps have executed without accepting. Neither outcome is an error; the
// trace always covers every configuration reached.
func (m *Machine) Simulate(input string) (trace []string, accepted bool) {
	def := m.Definition

	r := &run{
		tape:  tape.New(input),
		state: def.Initial,
	}

	trace = append(trace, r.describe())

	for step := 0; step < m.MaxSteps; step++ {
		symbol := r.tape.Read(r.head)

		rule, found := def.Rules.Find(r.state, r.cache, symbol)
		if !found {
			if m.Verbose {
				log.Printf("%v: halt, no rule for (%v, %v, %v)", step, r.state, r.cache, symbol)
			}
			return trace, false
		}

		r.state = rule.To
		r.cache = rule.CacheOut
		r.tape.Write(r.head, rule.TapeOut)

		switch rule.Move {
		case MOVE_LEFT:
			r.head--
		case MOVE_RIGHT:
			r.head++
		}

		trace = append(trace, r.describe())
		if m.Verbose {
			log.Printf("%v: %v", step+1, trace[len(trace)-1])
		}

		if r.state == def.Final {
			return trace, true
		}
	}

	if m.Verbose {
		log.Printf("halt, step bound %v reached in state %v", m.MaxSteps, r.state)
	}

	return trace, false
}
