package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/utm/machine"
	"github.com/ezrec/utm/tape"
)

var sampleYaml = `
q_states:
  q_list:
    - q0
    - q1
  initial: q0
  final: q1
alphabet:
  - a
tape_alphabet:
  - a
delta:
  - params:
      initial_state: q0
      mem_cache_value:
      tape_input: a
    output:
      final_state: q1
      mem_cache_value:
      tape_output: a
      tape_displacement: R
simulation_strings:
  - a
  - aa
`

func TestParse(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse([]byte(sampleYaml))
	assert.NoError(err)

	assert.Equal([]string{"q0", "q1"}, cfg.States.List)
	assert.Equal("q0", cfg.States.Initial)
	assert.Equal("q1", cfg.States.Final)
	assert.Equal([]string{"a"}, cfg.Alphabet)
	assert.Equal([]string{"a"}, cfg.TapeAlphabet)
	assert.Len(cfg.Delta, 1)
	assert.Equal([]string{"a", "aa"}, cfg.Inputs())

	delta := cfg.Delta[0]
	assert.Equal("q0", delta.Params.InitialState)
	assert.Equal("", delta.Params.MemCacheValue)
	assert.Equal("a", delta.Params.TapeInput)
	assert.Equal("q1", delta.Output.FinalState)
	assert.Equal("R", delta.Output.TapeDisplacement)
}

func TestParse_KeyMissing(t *testing.T) {
	assert := assert.New(t)

	for _, key := range requiredKeys {
		var doc map[string]any
		assert.NoError(yaml.Unmarshal([]byte(sampleYaml), &doc))
		delete(doc, key)

		data, err := yaml.Marshal(doc)
		assert.NoError(err)

		_, err = Parse(data)
		assert.ErrorIs(err, ErrKeyMissing(key), key)
	}
}

func TestParse_BadDocument(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse([]byte("q_states: ["))
	assert.Error(err)

	// A document that is not a mapping cannot carry the required keys.
	_, err = Parse([]byte("- q_states\n- alphabet\n"))
	assert.Error(err)
}

func TestConfig_Definition(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse([]byte(sampleYaml))
	assert.NoError(err)

	def, err := cfg.Definition()
	assert.NoError(err)

	assert.Equal("q0", def.Initial)
	assert.Equal("q1", def.Final)
	assert.Equal([]tape.Symbol{"a"}, def.Alphabet)
	assert.Len(def.Rules, 1)

	rule := def.Rules[0]
	assert.Equal("q0", rule.From)
	assert.Equal(tape.Blank, rule.CacheIn)
	assert.Equal(tape.Symbol("a"), rule.TapeIn)
	assert.Equal("q1", rule.To)
	assert.Equal(tape.Blank, rule.CacheOut)
	assert.Equal(tape.Symbol("a"), rule.TapeOut)
	assert.Equal(machine.MOVE_RIGHT, rule.Move)
}

func TestConfig_Definition_Simulate(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse([]byte(sampleYaml))
	assert.NoError(err)

	def, err := cfg.Definition()
	assert.NoError(err)

	trace, accepted := machine.New(def).Simulate("a")
	assert.True(accepted)
	assert.Equal([]string{"[q0]a", "a[q1]B"}, trace)

	// No rule reads a blank, so the empty string rejects immediately.
	trace, accepted = machine.New(def).Simulate("")
	assert.False(accepted)
	assert.Equal([]string{"[q0]B"}, trace)
}

// Null, empty string, and an absent key are the same blank symbol.
func TestConfig_Definition_BlankEncodings(t *testing.T) {
	assert := assert.New(t)

	explicit := `
q_states: {q_list: [q0, q1], initial: q0, final: q1}
alphabet: [a]
tape_alphabet: [a]
delta:
  - params: {initial_state: q0, mem_cache_value: null, tape_input: ""}
    output: {final_state: q1, mem_cache_value: "", tape_output: null, tape_displacement: S}
`
	absent := `
q_states: {q_list: [q0, q1], initial: q0, final: q1}
alphabet: [a]
tape_alphabet: [a]
delta:
  - params: {initial_state: q0}
    output: {final_state: q1, tape_displacement: S}
`

	var defs []*machine.Definition
	for _, doc := range []string{explicit, absent} {
		cfg, err := Parse([]byte(doc))
		assert.NoError(err)

		def, err := cfg.Definition()
		assert.NoError(err)
		defs = append(defs, def)
	}

	assert.Equal(defs[0], defs[1])

	first, accepted := machine.New(defs[0]).Simulate("")
	assert.True(accepted)
	second, accepted := machine.New(defs[1]).Simulate("")
	assert.True(accepted)
	assert.Equal(first, second)
}

// Loading the same document twice yields interchangeable definitions.
func TestConfig_Definition_Idempotent(t *testing.T) {
	assert := assert.New(t)

	var traces [][]string
	for range 2 {
		cfg, err := Parse([]byte(sampleYaml))
		assert.NoError(err)

		def, err := cfg.Definition()
		assert.NoError(err)

		trace, accepted := machine.New(def).Simulate("a")
		assert.True(accepted)
		traces = append(traces, trace)
	}

	assert.Equal(traces[0], traces[1])
}

func TestConfig_Definition_DisplacementInvalid(t *testing.T) {
	assert := assert.New(t)

	doc := `
q_states: {q_list: [q0, q1], initial: q0, final: q1}
alphabet: [a]
tape_alphabet: [a]
delta:
  - params: {initial_state: q0, tape_input: a}
    output: {final_state: q1, tape_output: a, tape_displacement: X}
`
	cfg, err := Parse([]byte(doc))
	assert.NoError(err)

	_, err = cfg.Definition()
	assert.ErrorIs(err, ErrDisplacementInvalid("X"))

	var ruleErr *machine.ErrRule
	assert.ErrorAs(err, &ruleErr)
	assert.Equal(0, ruleErr.Index)
}

func TestConfig_Definition_Malformed(t *testing.T) {
	assert := assert.New(t)

	doc := `
q_states: {q_list: [q0, q1], initial: q0, final: q1}
alphabet: [a]
tape_alphabet: [a]
delta:
  - params: {tape_input: a}
    output: {final_state: q1, tape_output: a, tape_displacement: R}
`
	cfg, err := Parse([]byte(doc))
	assert.NoError(err)

	_, err = cfg.Definition()
	assert.ErrorIs(err, machine.ErrRuleFromMissing)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "machine.yaml")
	assert.NoError(os.WriteFile(path, []byte(sampleYaml), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal([]string{"a", "aa"}, cfg.Inputs())

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(err)
}
