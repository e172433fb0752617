package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/pitchkit/internal/config"
	"github.com/Conceptual-Machines/pitchkit/internal/logger"
	"github.com/Conceptual-Machines/pitchkit/internal/metrics"
	"github.com/Conceptual-Machines/pitchkit/internal/midikey"
	"github.com/Conceptual-Machines/pitchkit/internal/models"
	"github.com/Conceptual-Machines/pitchkit/pkg/note"
	"github.com/gin-gonic/gin"
	"gitlab.com/gomidi/midi/v2"
)

type NoteHandler struct {
	cfg        *config.Config
	cloudwatch *metrics.Client
	spans      *metrics.SentryMetrics
}

func NewNoteHandler(cfg *config.Config, cloudwatch *metrics.Client) *NoteHandler {
	return &NoteHandler{
		cfg:        cfg,
		cloudwatch: cloudwatch,
		spans:      metrics.NewSentryMetrics(),
	}
}

// GetByName parses a note name
// GET /api/v1/notes/name/:name
func (h *NoteHandler) GetByName(c *gin.Context) {
	tuning, ok := h.tuning(c, c.Query("tuning"))
	if !ok {
		return
	}

	name := c.Param("name")
	n, err := note.Parse(name)
	resp := responseOrNil(n, tuning, err)
	h.record(c, kindParse, tuning, name, resp, err)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByNumber decodes an absolute note number
// GET /api/v1/notes/number/:number
func (h *NoteHandler) GetByNumber(c *gin.Context) {
	tuning, ok := h.tuning(c, c.Query("tuning"))
	if !ok {
		return
	}

	raw := c.Param("number")
	n, err := decodeNumber(raw)
	resp := responseOrNil(n, tuning, err)
	h.record(c, kindNumber, tuning, raw, resp, err)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByFrequency finds the nearest note to a frequency
// GET /api/v1/notes/frequency/:hz
func (h *NoteHandler) GetByFrequency(c *gin.Context) {
	tuning, ok := h.tuning(c, c.Query("tuning"))
	if !ok {
		return
	}

	raw := c.Param("hz")
	resp, err := frequencyResponse(raw, tuning)
	h.record(c, kindFrequency, tuning, raw, resp, err)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByMIDIKey decodes a MIDI key number, where key 60 is C4
// GET /api/v1/notes/midi/:key
func (h *NoteHandler) GetByMIDIKey(c *gin.Context) {
	tuning, ok := h.tuning(c, c.Query("tuning"))
	if !ok {
		return
	}

	raw := c.Param("key")
	n, err := decodeMIDIKey(raw)
	resp := responseOrNil(n, tuning, err)
	h.record(c, kindMIDI, tuning, raw, resp, err)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Convert converts a batch of names, numbers and frequencies
// POST /api/v1/notes/convert
func (h *NoteHandler) Convert(c *gin.Context) {
	var req models.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Convert: JSON binding error", logger.Fields{"error": err.Error(), "request_id": c.GetString("request_id")})
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), RequestID: c.GetString("request_id")})
		return
	}

	total := len(req.Notes) + len(req.Numbers) + len(req.Frequencies)
	if total == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no inputs to convert", RequestID: c.GetString("request_id")})
		return
	}
	if total > h.cfg.MaxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error:     fmt.Sprintf("batch of %d inputs exceeds limit of %d", total, h.cfg.MaxBatchSize),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	tuningName := req.Tuning
	if tuningName == "" {
		tuningName = c.Query("tuning")
	}
	tuning, ok := h.tuning(c, tuningName)
	if !ok {
		return
	}

	resp := models.ConvertResponse{
		Tuning:  tuning.String(),
		Results: make([]models.ConvertResult, 0, total),
	}
	add := func(input string, r *models.NoteResponse, err error) {
		result := models.ConvertResult{Input: input, Note: r}
		if err != nil {
			result.Error = err.Error()
			result.Kind = errorKind(err)
			resp.Rejected++
		} else {
			resp.Converted++
		}
		resp.Results = append(resp.Results, result)
	}

	for _, name := range req.Notes {
		n, err := note.Parse(name)
		r := responseOrNil(n, tuning, err)
		h.record(c, kindParse, tuning, name, r, err)
		add(name, r, err)
	}
	for _, number := range req.Numbers {
		input := strconv.Itoa(number)
		n, err := note.FromNoteNumber(number)
		r := responseOrNil(n, tuning, err)
		h.record(c, kindNumber, tuning, input, r, err)
		add(input, r, err)
	}
	for _, hz := range req.Frequencies {
		input := strconv.FormatFloat(hz, 'g', -1, 64)
		r, err := frequencyResponse(input, tuning)
		h.record(c, kindFrequency, tuning, input, r, err)
		add(input, r, err)
	}

	h.cloudwatch.RecordConversions(kindBatch, resp.Converted, resp.Rejected)
	c.JSON(http.StatusOK, resp)
}

// Range lists every semitone between two notes, both inclusive
// GET /api/v1/notes/range?from=C4&to=C5
func (h *NoteHandler) Range(c *gin.Context) {
	tuning, ok := h.tuning(c, c.Query("tuning"))
	if !ok {
		return
	}

	from, err := note.Parse(c.Query("from"))
	if err != nil {
		respondNoteError(c, fmt.Errorf("from: %w", err))
		return
	}
	to, err := note.Parse(c.Query("to"))
	if err != nil {
		respondNoteError(c, fmt.Errorf("to: %w", err))
		return
	}
	if from.Compare(to) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     fmt.Sprintf("from %s is above to %s", from, to),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	count := to.NoteNumber() - from.NoteNumber() + 1
	if count > h.cfg.MaxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error:     fmt.Sprintf("range of %d notes exceeds limit of %d", count, h.cfg.MaxBatchSize),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	resp := models.RangeResponse{
		From:    from.String(),
		To:      to.String(),
		Pitches: make([]string, 0, count),
		Notes:   make([]models.NoteResponse, 0, count),
	}
	for i := 0; i < count; i++ {
		n, err := from.Transpose(i)
		if err != nil {
			respondNoteError(c, err)
			return
		}
		resp.Pitches = append(resp.Pitches, n.PitchString())
		resp.Notes = append(resp.Notes, buildNoteResponse(n, tuning))
	}

	h.cloudwatch.RecordConversions(kindRange, count, 0)
	c.JSON(http.StatusOK, resp)
}

// tuning resolves a tuning name, falling back to the configured default, and
// writes a 400 when the name is unknown.
func (h *NoteHandler) tuning(c *gin.Context, name string) (note.Tuning, bool) {
	if name == "" {
		return h.cfg.Tuning(), true
	}
	t, err := note.ParseTuning(name)
	if err != nil {
		respondNoteError(c, err)
		return nil, false
	}
	return t, true
}

func (h *NoteHandler) record(c *gin.Context, kind string, tuning note.Tuning, input string, result *models.NoteResponse, err error) {
	output := ""
	if result != nil {
		output = result.Note
	}
	logger.LogConversion(kind, input, output, err, logger.WithContext(c))
	h.spans.RecordConversion(c.Request.Context(), kind, tuning.String(), err == nil)
}

func decodeNumber(raw string) (note.Note, error) {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return note.Note{}, &note.NoteError{Kind: note.ErrNoteNumberRange, Input: raw}
	}
	return note.FromNoteNumber(number)
}

func decodeMIDIKey(raw string) (note.Note, error) {
	key, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: %q", midikey.ErrOutOfMIDIRange, raw)
	}
	return midikey.FromMIDI(midi.Note(uint8(key)))
}

func frequencyResponse(raw string, tuning note.Tuning) (*models.NoteResponse, error) {
	hz, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &note.NoteError{Kind: note.ErrInvalidFrequency, Input: raw}
	}
	n, err := note.FromFrequency(hz, tuning)
	if err != nil {
		return nil, err
	}

	resp := buildNoteResponse(n, tuning)
	resp.InputHz = &hz
	if tuning == note.EqualTemperament {
		if cents, err := note.Cents(hz); err == nil {
			resp.Cents = &cents
		}
	}
	return &resp, nil
}

func responseOrNil(n note.Note, tuning note.Tuning, err error) *models.NoteResponse {
	if err != nil {
		return nil
	}
	r := buildNoteResponse(n, tuning)
	return &r
}

func buildNoteResponse(n note.Note, tuning note.Tuning) models.NoteResponse {
	resp := models.NoteResponse{
		Note:       n.String(),
		Pitch:      n.PitchString(),
		Octave:     n.Octave,
		Class:      n.Pitch.SemitoneClass(),
		NoteNumber: n.NoteNumber(),
		Frequency:  n.Frequency(tuning),
		Tuning:     tuning.String(),
	}
	if key, err := midikey.ToMIDI(n); err == nil {
		v := key.Value()
		resp.MIDIKey = &v
	}
	if msg, err := midikey.NoteOn(n, 0, defaultVelocity); err == nil {
		resp.NoteOn = fmt.Sprintf("% X", []byte(msg))
	}
	return resp
}

func respondNoteError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     err.Error(),
		Kind:      errorKind(err),
		RequestID: c.GetString("request_id"),
	})
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, note.ErrInvalidLetter):
		return "invalid_letter"
	case errors.Is(err, note.ErrInvalidAccidental):
		return "invalid_accidental"
	case errors.Is(err, note.ErrInvalidOctave):
		return "invalid_octave"
	case errors.Is(err, note.ErrInvalidFrequency):
		return "invalid_frequency"
	case errors.Is(err, note.ErrNoteNumberRange):
		return "note_number_range"
	case errors.Is(err, note.ErrUnknownTuning):
		return "unknown_tuning"
	case errors.Is(err, midikey.ErrOutOfMIDIRange):
		return "midi_key_range"
	default:
		return ""
	}
}
