package machine

import (
	"fmt"

	"github.com/ezrec/utm/tape"
)

// Describe renders the instantaneous description of a configuration: the
// tape contents with `[state]` (or `[state,cache]` when the cache is
// non-blank) spliced in directly before the symbol under the head, blanks
// rendered as the blank marker.
//
// The head may hang off either edge of the materialized tape; the marker
// and a blank are then rendered on that side of the full tape contents.
// Callers snapshot a configuration before the access that would extend the
// tape, so both forms occur in ordinary traces.
func Describe(t *tape.Tape, head int, state string, cache tape.Symbol) (id string) {
	marker := fmt.Sprintf("[%v]", state)
	if !cache.IsBlank() {
		marker = fmt.Sprintf("[%v,%v]", state, cache)
	}

	idx := t.Index(head)
	switch {
	case idx < 0:
		return marker + tape.BLANK_MARK + t.String()
	case idx >= t.Len():
		return t.String() + marker + tape.BLANK_MARK
	}

	var left, right string
	for _, sym := range t.Cells[:idx] {
		left += sym.String()
	}
	for _, sym := range t.Cells[idx+1:] {
		right += sym.String()
	}

	return left + marker + t.Cells[idx].String() + right
}
