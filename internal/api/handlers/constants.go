package handlers

const (
	// Conversion kinds used for logging and metrics
	kindParse     = "parse"
	kindNumber    = "number"
	kindFrequency = "frequency"
	kindBatch     = "batch"
	kindRange     = "range"
	kindMIDI      = "midi"
)

// defaultVelocity is the velocity of the note_on message in note responses
const defaultVelocity = 100
