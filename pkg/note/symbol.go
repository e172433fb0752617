package note

// PitchSymbol is an accidental applied to a note letter. Only the declared
// constants are valid.
type PitchSymbol uint8

const (
	Natural PitchSymbol = iota
	Sharp
	Flat
	DoubleSharp
	DoubleFlat
)

// Valid reports whether s is one of the declared accidentals.
func (s PitchSymbol) Valid() bool {
	return s <= DoubleFlat
}

// Delta returns the semitone shift of the accidental. Invalid symbols shift by 0.
func (s PitchSymbol) Delta() int {
	switch s {
	case Sharp:
		return 1
	case Flat:
		return -1
	case DoubleSharp:
		return 2
	case DoubleFlat:
		return -2
	default:
		return 0
	}
}

// String returns the canonical ASCII spelling: "", "#", "b", "##" or "bb".
func (s PitchSymbol) String() string {
	switch s {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	case DoubleSharp:
		return "##"
	case DoubleFlat:
		return "bb"
	default:
		return ""
	}
}

// Accepted spellings. ASCII forms are canonical, the Unicode ones are read only.
var symbolSpellings = map[string]PitchSymbol{
	"":   Natural,
	"♮":  Natural,
	"#":  Sharp,
	"♯":  Sharp,
	"b":  Flat,
	"♭":  Flat,
	"##": DoubleSharp,
	"♯♯": DoubleSharp,
	"x":  DoubleSharp,
	"𝄪":  DoubleSharp,
	"bb": DoubleFlat,
	"♭♭": DoubleFlat,
	"𝄫":  DoubleFlat,
}

// LookupSymbol resolves an accidental spelling.
func LookupSymbol(text string) (PitchSymbol, bool) {
	s, ok := symbolSpellings[text]
	return s, ok
}
