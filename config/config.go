// Package config loads machine definitions. Definitions are YAML documents
// or Starlark scripts sharing one schema; both loaders produce the same
// Config, and Definition is the single place external symbol encodings are
// normalized into machine symbols.
package config

import (
	"os"
	"path/filepath"

	"github.com/ezrec/utm/machine"
	"github.com/ezrec/utm/tape"
)

// Config is the external form of a machine definition.
type Config struct {
	States            States   `yaml:"q_states"`
	Alphabet          []string `yaml:"alphabet"`
	TapeAlphabet      []string `yaml:"tape_alphabet"`
	Delta             []Delta  `yaml:"delta"`
	SimulationStrings []string `yaml:"simulation_strings"`
}

// States names the machine's states.
type States struct {
	List    []string `yaml:"q_list"`
	Initial string   `yaml:"initial"`
	Final   string   `yaml:"final"`
}

// Delta is one transition rule: the configuration it applies to, and its
// effect.
type Delta struct {
	Params Params `yaml:"params"`
	Output Output `yaml:"output"`
}

// Params keys a rule on current state, cache value, and the symbol under
// the head. A null, empty, or absent symbol denotes blank.
type Params struct {
	InitialState  string `yaml:"initial_state"`
	MemCacheValue string `yaml:"mem_cache_value"`
	TapeInput     string `yaml:"tape_input"`
}

// Output is a rule's effect: next state, new cache value, symbol written
// under the head, and the head displacement (L, R, or S).
type Output struct {
	FinalState       string `yaml:"final_state"`
	MemCacheValue    string `yaml:"mem_cache_value"`
	TapeOutput       string `yaml:"tape_output"`
	TapeDisplacement string `yaml:"tape_displacement"`
}

// requiredKeys are the top-level keys every machine definition must carry.
// simulation_strings is optional.
var requiredKeys = []string{"q_states", "alphabet", "tape_alphabet", "delta"}

// displacementMap maps schema displacement letters to head displacements.
var displacementMap = map[string]machine.Displacement{
	"L": machine.MOVE_LEFT,
	"R": machine.MOVE_RIGHT,
	"S": machine.MOVE_STAY,
}

// Load reads a machine definition file, selecting the loader by extension:
// Starlark for .star files, YAML otherwise.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(path) == ".star" {
		return ParseScript(path, data)
	}

	return Parse(data)
}

// Definition constructs the machine definition the configuration
// describes. Empty symbol strings become the blank symbol here; past this
// point blank is a single value. Fails on an invalid displacement letter
// or on a structurally incomplete definition.
func (cfg *Config) Definition() (def *machine.Definition, err error) {
	rules := make(machine.Rules, 0, len(cfg.Delta))
	for n, delta := range cfg.Delta {
		move, ok := displacementMap[delta.Output.TapeDisplacement]
		if !ok {
			err = ErrDisplacementInvalid(delta.Output.TapeDisplacement)
			return nil, &machine.ErrRule{Index: n, Err: err}
		}

		rules = append(rules, machine.Transition{
			From:     delta.Params.InitialState,
			CacheIn:  tape.Symbol(delta.Params.MemCacheValue),
			TapeIn:   tape.Symbol(delta.Params.TapeInput),
			To:       delta.Output.FinalState,
			CacheOut: tape.Symbol(delta.Output.MemCacheValue),
			TapeOut:  tape.Symbol(delta.Output.TapeOutput),
			Move:     move,
		})
	}

	return machine.NewDefinition(cfg.States.List, cfg.States.Initial, cfg.States.Final,
		tape.Symbols(cfg.Alphabet), tape.Symbols(cfg.TapeAlphabet), rules)
}

// Inputs returns the strings the definition asks to have simulated.
func (cfg *Config) Inputs() []string {
	return cfg.SimulationStrings
}
