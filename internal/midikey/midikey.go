// Package midikey maps notes onto MIDI key numbers, where key 60 is C4.
package midikey

import (
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/pitchkit/pkg/note"
	"gitlab.com/gomidi/midi/v2"
)

const (
	// keyOffset is the MIDI key of C0. MIDI starts counting at C-1.
	keyOffset = 12
	maxKey    = 127
)

var ErrOutOfMIDIRange = errors.New("note outside MIDI key range")

// ToMIDI returns the MIDI key for a note. Only C-1..G9 exist in MIDI, so notes
// above G9 (note number 115) fail.
func ToMIDI(n note.Note) (midi.Note, error) {
	key := n.NoteNumber() + keyOffset
	if key > maxKey {
		return 0, fmt.Errorf("%w: %s", ErrOutOfMIDIRange, n)
	}
	return midi.Note(uint8(key)), nil
}

// FromMIDI decodes a MIDI key. Keys below C0 have no note number and fail.
func FromMIDI(key midi.Note) (note.Note, error) {
	number := int(key.Value()) - keyOffset
	if number < 0 || key.Value() > maxKey {
		return note.Note{}, fmt.Errorf("%w: key %d", ErrOutOfMIDIRange, key.Value())
	}
	return note.FromNoteNumber(number)
}

// NoteOn builds a note-on message for n.
func NoteOn(n note.Note, channel, velocity uint8) (midi.Message, error) {
	key, err := ToMIDI(n)
	if err != nil {
		return nil, err
	}
	return midi.NoteOn(channel, key.Value(), velocity), nil
}
