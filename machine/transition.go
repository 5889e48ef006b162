package machine

import (
	"github.com/ezrec/utm/tape"
)

// Displacement is a head movement.
type Displacement int

//go:generate go tool stringer -linecomment -type=Displacement
const (
	MOVE_LEFT  = Displacement(0) // L
	MOVE_RIGHT = Displacement(1) // R
	MOVE_STAY  = Displacement(2) // S
)

// Transition is one rule of the machine's transition function. A rule
// applies when the machine is in state From with cache value CacheIn and
// the symbol under the head is TapeIn. Applying it enters state To, stores
// CacheOut in the cache, writes TapeOut under the head, then moves the
// head by Move.
//
// All Symbol fields hold normalized values; a blank operand is tape.Blank.
type Transition struct {
	From    string      // Current state.
	CacheIn tape.Symbol // Required cache value.
	TapeIn  tape.Symbol // Required symbol under the head.

	To       string       // Next state.
	CacheOut tape.Symbol  // New cache value.
	TapeOut  tape.Symbol  // Symbol written under the head.
	Move     Displacement // Head displacement after the write.
}

// Matches reports whether the rule applies to the given configuration.
func (tr *Transition) Matches(state string, cache, symbol tape.Symbol) bool {
	return tr.From == state && tr.CacheIn == cache && tr.TapeIn == symbol
}

// Rules is a machine's transition table, in declaration order.
type Rules []Transition

// Find returns the first rule matching the given configuration. When a
// table declares more than one rule for the same (state, cache, symbol)
// key, the earliest declared rule wins.
func (rules Rules) Find(state string, cache, symbol tape.Symbol) (tr Transition, found bool) {
	for n := range rules {
		if rules[n].Matches(state, cache, symbol) {
			return rules[n], true
		}
	}

	return Transition{}, false
}
