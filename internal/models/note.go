package models

// NoteResponse is every representation of a single note
type NoteResponse struct {
	Note       string   `json:"note"`               // full rendering, e.g. "C#4"
	Pitch      string   `json:"pitch"`              // pitch-only rendering, e.g. "C#"
	Octave     uint8    `json:"octave"`             // written octave
	Class      int      `json:"class"`              // semitone class 0-11
	NoteNumber int      `json:"note_number"`        // semitones above C0
	Frequency  float64  `json:"frequency_hz"`       // under Tuning
	Tuning     string   `json:"tuning"`
	MIDIKey    *uint8   `json:"midi_key,omitempty"` // absent above G9
	NoteOn     string   `json:"note_on,omitempty"`  // hex note-on bytes, channel 1
	Cents      *float64 `json:"cents,omitempty"`    // only for frequency lookups
	InputHz    *float64 `json:"input_hz,omitempty"`
}

// ConvertRequest is a batch of mixed inputs converted under one tuning
type ConvertRequest struct {
	Notes       []string  `json:"notes"`
	Numbers     []int     `json:"numbers"`
	Frequencies []float64 `json:"frequencies"`
	Tuning      string    `json:"tuning,omitempty"`
}

// ConvertResult is the outcome for one input of a batch
type ConvertResult struct {
	Input string        `json:"input"`
	Note  *NoteResponse `json:"result,omitempty"`
	Error string        `json:"error,omitempty"`
	Kind  string        `json:"kind,omitempty"`
}

// ConvertResponse lists results in input order: notes, then numbers, then frequencies
type ConvertResponse struct {
	Tuning    string          `json:"tuning"`
	Results   []ConvertResult `json:"results"`
	Converted int             `json:"converted"`
	Rejected  int             `json:"rejected"`
}

// RangeResponse is a chromatic listing between two notes, both inclusive
type RangeResponse struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Pitches []string       `json:"pitches"` // compact pitch-only listing
	Notes   []NoteResponse `json:"notes"`
}

// ErrorResponse is returned for rejected input
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
