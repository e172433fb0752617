// Package note models musical pitches and converts between note names,
// absolute note numbers and frequencies.
//
// Note numbers count semitones from C0, so C4 is 48 and A4 is 57. Encodable
// note numbers are limited to [0, MaxNoteNumber].
package note

import (
	"strconv"
	"strings"
)

// MaxNoteNumber is the highest note number accepted when decoding (D#21).
const MaxNoteNumber = 255

// Note is a pitch in a given octave. Octave 4 contains A4 = 440 Hz.
type Note struct {
	Pitch  Pitch
	Octave uint8
}

// New builds a note without range checks; NoteNumber may exceed MaxNoteNumber.
func New(pitch Pitch, octave uint8) Note {
	return Note{Pitch: pitch, Octave: octave}
}

// Parse reads a note such as "A4", "C#4" or "Bb3". Everything before the
// first digit is the pitch and the digits that follow are the octave. A
// missing, signed or non-numeric octave fails with ErrInvalidOctave, as does
// a note whose number would exceed MaxNoteNumber.
func Parse(text string) (Note, error) {
	idx := strings.IndexFunc(text, isDigit)
	if idx < 0 {
		if _, err := ParsePitch(text); err != nil {
			return Note{}, err
		}
		return Note{}, newError(ErrInvalidOctave, text)
	}

	name, digits := text[:idx], text[idx:]
	if strings.HasSuffix(name, "-") || strings.HasSuffix(name, "+") {
		return Note{}, newError(ErrInvalidOctave, text)
	}
	pitch, err := ParsePitch(name)
	if err != nil {
		return Note{}, err
	}

	if strings.IndexFunc(digits, func(r rune) bool { return !isDigit(r) }) >= 0 {
		return Note{}, newError(ErrInvalidOctave, text)
	}
	octave, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return Note{}, newError(ErrInvalidOctave, text)
	}

	n := New(pitch, uint8(octave))
	if n.NoteNumber() > MaxNoteNumber {
		return Note{}, newError(ErrInvalidOctave, text)
	}
	return n, nil
}

// NoteNumber returns pitch class + 12 * octave.
func (n Note) NoteNumber() int {
	return n.Pitch.SemitoneClass() + semitonesPerOctave*int(n.Octave)
}

// FromNoteNumber decodes a note number. The pitch comes back in its canonical
// spelling (see PitchFromSemitoneClass), so Db4 encodes and decodes as C#4.
func FromNoteNumber(number int) (Note, error) {
	if number < 0 || number > MaxNoteNumber {
		return Note{}, newError(ErrNoteNumberRange, strconv.Itoa(number))
	}
	return New(PitchFromSemitoneClass(number%semitonesPerOctave), uint8(number/semitonesPerOctave)), nil
}

// Frequency returns the frequency of the note in Hz under t. A nil t means
// EqualTemperament.
func (n Note) Frequency(t Tuning) float64 {
	return orDefault(t).Frequency(n.NoteNumber())
}

// FromFrequency returns the note nearest to hz under t. A nil t means
// EqualTemperament.
func FromFrequency(hz float64, t Tuning) (Note, error) {
	number, err := orDefault(t).NoteNumber(hz)
	if err != nil {
		return Note{}, err
	}
	if number < 0 || number > MaxNoteNumber {
		return Note{}, newError(ErrInvalidFrequency, strconv.FormatFloat(hz, 'g', -1, 64))
	}
	return FromNoteNumber(number)
}

// Transpose moves the note by a number of semitones. The result is spelled canonically.
func (n Note) Transpose(semitones int) (Note, error) {
	return FromNoteNumber(n.NoteNumber() + semitones)
}

// Compare orders notes by pitch height: -1, 0 or +1.
func (n Note) Compare(other Note) int {
	a, b := n.NoteNumber(), other.NoteNumber()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// PitchString renders the pitch without the octave, e.g. "C#".
func (n Note) PitchString() string {
	return n.Pitch.String()
}

// String renders the note as Parse reads it, e.g. "C#4".
func (n Note) String() string {
	return n.Pitch.String() + strconv.Itoa(int(n.Octave))
}

// MarshalText implements encoding.TextMarshaler. It fails for invalid pitches.
func (n Note) MarshalText() ([]byte, error) {
	if _, err := n.Pitch.MarshalText(); err != nil {
		return nil, err
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
