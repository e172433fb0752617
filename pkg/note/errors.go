package note

import (
	"errors"
	"fmt"
)

// Error kinds returned by parsing and inverse conversions. Match them with errors.Is.
var (
	ErrInvalidLetter     = errors.New("invalid note letter")
	ErrInvalidAccidental = errors.New("invalid accidental")
	ErrInvalidOctave     = errors.New("invalid octave")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrNoteNumberRange   = errors.New("note number out of range")
	ErrUnknownTuning     = errors.New("unknown tuning")
)

// NoteError carries the failing kind together with the offending input.
type NoteError struct {
	Kind  error
	Input string
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Input)
}

func (e *NoteError) Unwrap() error {
	return e.Kind
}

func newError(kind error, input string) *NoteError {
	return &NoteError{Kind: kind, Input: input}
}
