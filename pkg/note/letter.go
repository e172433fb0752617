package note

import "unicode"

// NoteLetter is a staff letter name. Only the declared constants A..G are
// valid; use Valid to check values that did not come from LookupLetter.
type NoteLetter uint8

const (
	A NoteLetter = iota
	B
	C
	D
	E
	F
	G
)

// Valid reports whether l is one of A..G.
func (l NoteLetter) Valid() bool {
	return l <= G
}

// Offset returns the natural semitone offset of the letter within an octave,
// C=0. Invalid letters have offset 0.
func (l NoteLetter) Offset() int {
	switch l {
	case C:
		return 0
	case D:
		return 2
	case E:
		return 4
	case F:
		return 5
	case G:
		return 7
	case A:
		return 9
	case B:
		return 11
	default:
		return 0
	}
}

// String returns the upper-case letter, or "?" for an invalid letter.
func (l NoteLetter) String() string {
	if !l.Valid() {
		return "?"
	}
	return string(rune('A' + l))
}

// LookupLetter resolves a letter rune. Lower case is accepted.
func LookupLetter(r rune) (NoteLetter, bool) {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'G' {
		return 0, false
	}
	return NoteLetter(r - 'A'), true
}
