package midikey

import (
	"testing"

	"github.com/Conceptual-Machines/pitchkit/pkg/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
)

func TestToMIDI(t *testing.T) {
	tests := []struct {
		name string
		note string
		key  uint8
	}{
		{"middle C", "C4", 60},
		{"A440", "A4", 69},
		{"C0", "C0", 12},
		{"flat", "Bb2", 46},
		{"highest MIDI key", "G9", 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := note.Parse(tt.note)
			require.NoError(t, err)

			key, err := ToMIDI(n)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key.Value())
		})
	}
}

func TestToMIDI_OutOfRange(t *testing.T) {
	n, err := note.Parse("G#9")
	require.NoError(t, err)

	_, err = ToMIDI(n)
	assert.ErrorIs(t, err, ErrOutOfMIDIRange)
}

func TestFromMIDI(t *testing.T) {
	n, err := FromMIDI(midi.Note(61))
	require.NoError(t, err)
	assert.Equal(t, "C#4", n.String())

	_, err = FromMIDI(midi.Note(11))
	assert.ErrorIs(t, err, ErrOutOfMIDIRange)
}

func TestRoundTrip(t *testing.T) {
	for key := uint8(keyOffset); key <= maxKey; key++ {
		n, err := FromMIDI(midi.Note(key))
		require.NoError(t, err)

		back, err := ToMIDI(n)
		require.NoError(t, err)
		assert.Equal(t, key, back.Value())
	}
}

func TestNoteOn(t *testing.T) {
	n, err := note.Parse("A4")
	require.NoError(t, err)

	msg, err := NoteOn(n, 2, 100)
	require.NoError(t, err)

	var channel, key, velocity uint8
	require.True(t, msg.GetNoteOn(&channel, &key, &velocity))
	assert.Equal(t, uint8(2), channel)
	assert.Equal(t, uint8(69), key)
	assert.Equal(t, uint8(100), velocity)
}
