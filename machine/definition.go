package machine

import (
	"github.com/ezrec/utm/tape"
)

// Definition describes a machine: its states, its alphabets, and its
// transition table. Definitions are only created by NewDefinition and never
// modified afterwards, so any number of simulations may share one.
type Definition struct {
	States       []string      // All state names.
	Initial      string        // Starting state.
	Final        string        // Accepting state.
	Alphabet     []tape.Symbol // Input alphabet.
	TapeAlphabet []tape.Symbol // Tape alphabet.
	Rules        Rules         // Transition table, in declaration order.
}

// NewDefinition validates and assembles a machine definition. No partial
// value is returned on failure: the state list must be non-empty, the
// initial and final states named, and every rule structurally complete
// (both states named, displacement in range). Deeper consistency of the
// table is not checked; simulation only ever asks whether some rule
// applies.
func NewDefinition(states []string, initial, final string, alphabet, tapeAlphabet []tape.Symbol, rules Rules) (def *Definition, err error) {
	if len(states) == 0 {
		return nil, ErrStatesEmpty
	}
	if initial == "" {
		return nil, ErrInitialMissing
	}
	if final == "" {
		return nil, ErrFinalMissing
	}

	for n := range rules {
		rule := &rules[n]
		switch {
		case rule.From == "":
			err = ErrRuleFromMissing
		case rule.To == "":
			err = ErrRuleToMissing
		case rule.Move < MOVE_LEFT || rule.Move > MOVE_STAY:
			err = ErrRuleMoveInvalid
		default:
			continue
		}

		return nil, &ErrRule{Index: n, Err: err}
	}

	def = &Definition{
		States:       states,
		Initial:      initial,
		Final:        final,
		Alphabet:     alphabet,
		TapeAlphabet: tapeAlphabet,
		Rules:        rules,
	}

	return def, nil
}
