// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseScript executes a Starlark machine definition script. The script's
// exported globals carry the same names and shapes as the YAML schema's
// top-level keys, with None for a blank symbol. Top-level control flow is
// enabled so delta tables can be generated instead of written out; a
// cache-augmented table grows with the square of the tape alphabet, which
// is past the point of hand-editing YAML.
//
// src may be a string, []byte, or io.Reader; name is used in script error
// positions.
func ParseScript(name string, src any) (cfg *Config, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, starlark.StringDict{})
	if err != nil {
		return nil, err
	}

	for _, key := range requiredKeys {
		if _, ok := globals[key]; !ok {
			return nil, ErrKeyMissing(key)
		}
	}

	cfg = &Config{}

	cfg.States, err = scriptStates(globals["q_states"])
	if err != nil {
		return nil, &ErrScriptGlobal{Global: "q_states", Err: err}
	}

	cfg.Alphabet, err = scriptStrings(globals["alphabet"])
	if err != nil {
		return nil, &ErrScriptGlobal{Global: "alphabet", Err: err}
	}

	cfg.TapeAlphabet, err = scriptStrings(globals["tape_alphabet"])
	if err != nil {
		return nil, &ErrScriptGlobal{Global: "tape_alphabet", Err: err}
	}

	cfg.Delta, err = scriptDelta(globals["delta"])
	if err != nil {
		return nil, &ErrScriptGlobal{Global: "delta", Err: err}
	}

	if value, ok := globals["simulation_strings"]; ok {
		cfg.SimulationStrings, err = scriptStrings(value)
		if err != nil {
			return nil, &ErrScriptGlobal{Global: "simulation_strings", Err: err}
		}
	}

	return cfg, nil
}

// scriptString accepts a Starlark string, or None as the empty string.
func scriptString(value starlark.Value) (str string, err error) {
	switch v := value.(type) {
	case nil, starlark.NoneType:
		return "", nil
	case starlark.String:
		return string(v), nil
	}

	return "", ErrWantString
}

// scriptStrings accepts a Starlark list of strings.
func scriptStrings(value starlark.Value) (strs []string, err error) {
	list, ok := value.(*starlark.List)
	if !ok {
		return nil, ErrWantList
	}

	strs = make([]string, 0, list.Len())
	for n := range list.Len() {
		var str string
		str, err = scriptString(list.Index(n))
		if err != nil {
			return nil, err
		}
		strs = append(strs, str)
	}

	return
}

// scriptEntry looks up a dict key, with None for an absent key.
func scriptEntry(dict *starlark.Dict, key string) starlark.Value {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil || !found {
		return starlark.None
	}

	return value
}

func scriptStates(value starlark.Value) (states States, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return states, ErrWantDict
	}

	states.List, err = scriptStrings(scriptEntry(dict, "q_list"))
	if err != nil {
		return
	}
	states.Initial, err = scriptString(scriptEntry(dict, "initial"))
	if err != nil {
		return
	}
	states.Final, err = scriptString(scriptEntry(dict, "final"))

	return
}

func scriptDelta(value starlark.Value) (deltas []Delta, err error) {
	list, ok := value.(*starlark.List)
	if !ok {
		return nil, ErrWantList
	}

	for n := range list.Len() {
		dict, ok := list.Index(n).(*starlark.Dict)
		if !ok {
			return nil, ErrWantDict
		}

		var delta Delta
		delta.Params, err = scriptParams(scriptEntry(dict, "params"))
		if err != nil {
			return nil, err
		}
		delta.Output, err = scriptOutput(scriptEntry(dict, "output"))
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}

	return
}

func scriptParams(value starlark.Value) (params Params, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return params, ErrWantDict
	}

	params.InitialState, err = scriptString(scriptEntry(dict, "initial_state"))
	if err != nil {
		return
	}
	params.MemCacheValue, err = scriptString(scriptEntry(dict, "mem_cache_value"))
	if err != nil {
		return
	}
	params.TapeInput, err = scriptString(scriptEntry(dict, "tape_input"))

	return
}

func scriptOutput(value starlark.Value) (output Output, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return output, ErrWantDict
	}

	output.FinalState, err = scriptString(scriptEntry(dict, "final_state"))
	if err != nil {
		return
	}
	output.MemCacheValue, err = scriptString(scriptEntry(dict, "mem_cache_value"))
	if err != nil {
		return
	}
	output.TapeOutput, err = scriptString(scriptEntry(dict, "tape_output"))
	if err != nil {
		return
	}
	output.TapeDisplacement, err = scriptString(scriptEntry(dict, "tape_displacement"))

	return
}
