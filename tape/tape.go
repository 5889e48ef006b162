// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape implements the unbounded storage of a Turing machine.
//
// The tape is materialized as a finite window of cells that grows whenever a
// position outside it is read or written. Positions are logical: position 0
// is the cell under the head when the machine starts, negative positions lie
// to its left. Origin tracks where logical position 0 sits within Cells, so
// growing to the left never renumbers positions already handed out.
package tape

// Tape is the machine's storage. The zero value is an empty tape.
type Tape struct {
	Cells  []Symbol // Materialized cells, leftmost first.
	Origin int      // Index of logical position 0 within Cells.
}

// New creates a tape holding one cell per rune of input.
// An empty input materializes no cells; the first access will.
func New(input string) (t *Tape) {
	t = &Tape{}
	for _, r := range input {
		t.Cells = append(t.Cells, Symbol(r))
	}

	return
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.Cells)
}

// Index returns the materialized index of logical position pos. The result
// indexes Cells only once the position has been materialized; callers that
// snapshot the tape before an access use out-of-range results to detect the
// head hanging off either edge.
func (t *Tape) Index(pos int) int {
	return t.Origin + pos
}

// grow materializes logical position pos, padding with blanks as needed,
// and returns its index within Cells.
func (t *Tape) grow(pos int) (idx int) {
	idx = t.Origin + pos
	if idx < 0 {
		t.Cells = append(make([]Symbol, -idx, len(t.Cells)-idx), t.Cells...)
		t.Origin -= idx
		idx = 0
	}
	if idx >= len(t.Cells) {
		t.Cells = append(t.Cells, make([]Symbol, idx-len(t.Cells)+1)...)
	}

	return
}

// Read returns the symbol at logical position pos, materializing it first.
func (t *Tape) Read(pos int) Symbol {
	return t.Cells[t.grow(pos)]
}

// Write stores sym at logical position pos, materializing it first.
// Writing Blank re-blanks the cell; cells are never removed.
func (t *Tape) Write(pos int, sym Symbol) {
	t.Cells[t.grow(pos)] = sym
}

// String renders the materialized window, blanks as the blank marker.
func (t *Tape) String() (text string) {
	for _, sym := range t.Cells {
		text += sym.String()
	}

	return
}
