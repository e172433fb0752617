package logger

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevFlags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t, "{a=1, b=x, c=0.50}", formatFields(Fields{"c": 0.5, "a": 1, "b": "x"}))
}

func TestLogConversion(t *testing.T) {
	buf := captureLog(t)

	LogConversion("parse", "C4", "48", nil, nil)
	assert.Contains(t, buf.String(), "[DEBUG] Conversion completed")
	assert.Contains(t, buf.String(), "output=48")

	buf.Reset()
	LogConversion("parse", "H4", "", errors.New("invalid note letter"), Fields{"request_id": "abc"})
	assert.Contains(t, buf.String(), "[WARN] Conversion rejected")
	assert.Contains(t, buf.String(), "error=invalid note letter")
	assert.Contains(t, buf.String(), "request_id=abc")
}

func TestError_WithoutSentry(t *testing.T) {
	buf := captureLog(t)
	Error("boom", errors.New("bad"), Fields{"path": "/x"})
	assert.Contains(t, buf.String(), "[ERROR] boom: bad {path=/x}")
}
