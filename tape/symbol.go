package tape

// Symbol is a single tape or cache symbol. The zero value is Blank.
//
// External encodings of "no symbol" (YAML null, Starlark None, the empty
// string) all normalize to Blank when a definition is loaded; past that
// boundary a Symbol is only ever compared against other Symbols.
type Symbol string

// Blank is the distinguished blank symbol.
const Blank = Symbol("")

// BLANK_MARK is the printable form of Blank in instantaneous descriptions.
const BLANK_MARK = "B"

// IsBlank reports whether s is the blank symbol.
func (s Symbol) IsBlank() bool {
	return s == Blank
}

// String renders the symbol, with Blank as the blank marker.
func (s Symbol) String() string {
	if s == Blank {
		return BLANK_MARK
	}

	return string(s)
}

// Symbols normalizes a list of raw symbol strings.
func Symbols(raw []string) (symbols []Symbol) {
	symbols = make([]Symbol, 0, len(raw))
	for _, str := range raw {
		symbols = append(symbols, Symbol(str))
	}

	return
}
