package note

import "unicode/utf8"

const semitonesPerOctave = 12

// Pitch is a pitch class spelled as a letter plus an accidental.
// C# and Db share a semitone class but are different Pitch values.
type Pitch struct {
	letter NoteLetter
	symbol PitchSymbol
}

// NewPitch combines a letter and an accidental. Both must be declared
// constants; Valid reports whether that holds for the result.
func NewPitch(letter NoteLetter, symbol PitchSymbol) Pitch {
	return Pitch{letter: letter, symbol: symbol}
}

// Valid reports whether the letter and accidental are both declared constants.
// Pitches from ParsePitch and PitchFromSemitoneClass are always valid.
func (p Pitch) Valid() bool {
	return p.letter.Valid() && p.symbol.Valid()
}

// Letter returns the staff letter.
func (p Pitch) Letter() NoteLetter { return p.letter }

// Symbol returns the accidental.
func (p Pitch) Symbol() PitchSymbol { return p.symbol }

// ParsePitch reads a pitch name such as "C", "c#", "Bb" or "F♯".
// The letter is case-insensitive; the accidental must follow it directly.
func ParsePitch(text string) (Pitch, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return Pitch{}, newError(ErrInvalidLetter, text)
	}
	letter, ok := LookupLetter(r)
	if !ok {
		return Pitch{}, newError(ErrInvalidLetter, text)
	}
	symbol, ok := LookupSymbol(text[size:])
	if !ok {
		return Pitch{}, newError(ErrInvalidAccidental, text)
	}
	return Pitch{letter: letter, symbol: symbol}, nil
}

// SemitoneClass returns the pitch class in [0,11]. Cb wraps to 11 and B# to 0.
func (p Pitch) SemitoneClass() int {
	return floorMod(p.letter.Offset()+p.symbol.Delta(), semitonesPerOctave)
}

// Enharmonic reports whether both pitches sound the same.
func (p Pitch) Enharmonic(other Pitch) bool {
	return p.SemitoneClass() == other.SemitoneClass()
}

var canonicalPitches = [semitonesPerOctave]Pitch{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

// PitchFromSemitoneClass decodes a class to its canonical spelling: naturals
// where possible, sharps otherwise. The original spelling of an enharmonic
// pitch cannot be recovered, so Db decodes as C#.
func PitchFromSemitoneClass(class int) Pitch {
	return canonicalPitches[floorMod(class, semitonesPerOctave)]
}

// String renders the pitch as ParsePitch reads it, e.g. "C#" or "Bbb".
func (p Pitch) String() string {
	return p.letter.String() + p.symbol.String()
}

// MarshalText implements encoding.TextMarshaler. Invalid pitches fail rather
// than render text ParsePitch would reject.
func (p Pitch) MarshalText() ([]byte, error) {
	if !p.letter.Valid() {
		return nil, newError(ErrInvalidLetter, p.String())
	}
	if !p.symbol.Valid() {
		return nil, newError(ErrInvalidAccidental, p.String())
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePitch.
func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := ParsePitch(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
