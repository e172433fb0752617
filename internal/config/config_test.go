package config

import (
	"testing"

	"github.com/Conceptual-Machines/pitchkit/pkg/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("DEFAULT_TUNING", "")
	t.Setenv("MAX_BATCH_SIZE", "")

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultMaxBatchSize, cfg.MaxBatchSize)
	assert.False(t, cfg.IsProduction())
	require.NoError(t, cfg.Validate())
	assert.Equal(t, note.EqualTemperament, cfg.Tuning())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DEFAULT_TUNING", "12tet")
	t.Setenv("MAX_BATCH_SIZE", "32")
	t.Setenv("CLOUDWATCH_ENABLED", "true")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.CloudWatchEnabled)
	assert.Equal(t, 32, cfg.MaxBatchSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tuning  string
		batch   string
		wantErr bool
	}{
		{"valid", "equal", "10", false},
		{"unknown tuning", "pythagorean", "10", true},
		{"zero batch", "equal", "0", true},
		{"non-numeric batch", "equal", "many", true},
		{"batch too large", "equal", "100000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEFAULT_TUNING", tt.tuning)
			t.Setenv("MAX_BATCH_SIZE", tt.batch)

			err := Load().Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
