// Package machine implements a deterministic single-tape Turing machine
// augmented with a memory cache register.
//
// A machine is described by a Definition: a set of named states with one
// initial and one final state, an input and a tape alphabet, and a table of
// transition Rules keyed on (state, cache, symbol under the head). Each
// executed step may rewrite the cell under the head, replace the cache
// value, and move the head one cell left or right (or hold it).
//
// Simulation produces a trace of instantaneous descriptions, one per
// executed step plus the initial configuration, and an accept verdict. The
// machine accepts when it enters the final state; it rejects when no rule
// applies or when the step bound runs out.
package machine
