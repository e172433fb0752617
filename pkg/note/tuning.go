package note

import (
	"math"
	"strconv"
	"strings"
)

const (
	// ReferenceFrequency is the frequency of A4 in Hz.
	ReferenceFrequency = 440.0
	// ReferenceNoteNumber is the note number of A4.
	ReferenceNoteNumber = 9 + semitonesPerOctave*4
)

// Tuning maps note numbers to frequencies and back. The set of tunings is
// closed: every strategy lives in this package.
type Tuning interface {
	// Frequency returns the frequency in Hz of a note number.
	Frequency(noteNumber int) float64
	// NoteNumber returns the nearest note number to a frequency in Hz.
	NoteNumber(hz float64) (int, error)
	String() string

	tuning()
}

// EqualTemperament divides the octave into twelve equal ratios of 2^(1/12),
// anchored at A4 = 440 Hz. It is also what a nil Tuning means to Note.Frequency
// and FromFrequency. Do not reassign it.
var EqualTemperament Tuning = equalTemperament{}

func orDefault(t Tuning) Tuning {
	if t == nil {
		return equalTemperament{}
	}
	return t
}

type equalTemperament struct{}

func (equalTemperament) tuning() {}

func (equalTemperament) String() string { return "equal-temperament" }

func (equalTemperament) Frequency(noteNumber int) float64 {
	return ReferenceFrequency * math.Pow(2, float64(noteNumber-ReferenceNoteNumber)/semitonesPerOctave)
}

func (equalTemperament) NoteNumber(hz float64) (int, error) {
	offset, err := semitonesFromReference(hz)
	if err != nil {
		return 0, err
	}
	return int(math.Round(offset)) + ReferenceNoteNumber, nil
}

// Cents returns how far hz lies from the nearest equal-tempered semitone,
// in the range [-50, 50].
func Cents(hz float64) (float64, error) {
	offset, err := semitonesFromReference(hz)
	if err != nil {
		return 0, err
	}
	return 100 * (offset - math.Round(offset)), nil
}

func semitonesFromReference(hz float64) (float64, error) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return 0, newError(ErrInvalidFrequency, strconv.FormatFloat(hz, 'g', -1, 64))
	}
	return semitonesPerOctave * math.Log2(hz/ReferenceFrequency), nil
}

var tuningNames = map[string]Tuning{
	"equal-temperament": EqualTemperament,
	"equal":             EqualTemperament,
	"12tet":             EqualTemperament,
	"12-tet":            EqualTemperament,
	"et":                EqualTemperament,
}

// ParseTuning resolves a tuning by name. The empty name selects EqualTemperament.
func ParseTuning(name string) (Tuning, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return EqualTemperament, nil
	}
	t, ok := tuningNames[key]
	if !ok {
		return nil, newError(ErrUnknownTuning, name)
	}
	return t, nil
}
