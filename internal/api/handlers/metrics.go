package handlers

import (
	"net/http"
	"time"

	"github.com/Conceptual-Machines/pitchkit/internal/config"
	"github.com/Conceptual-Machines/pitchkit/internal/metrics"
	"github.com/Conceptual-Machines/pitchkit/pkg/note"
	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	startTime  time.Time
	version    string
	cfg        *config.Config
	cloudwatch *metrics.Client
}

func NewMetricsHandler(version string, cfg *config.Config, cloudwatch *metrics.Client) *MetricsHandler {
	return &MetricsHandler{
		startTime:  time.Now(),
		version:    version,
		cfg:        cfg,
		cloudwatch: cloudwatch,
	}
}

type MetricsResponse struct {
	Status    string  `json:"status"`
	Uptime    string  `json:"uptime"`
	Version   string  `json:"version"`
	StartTime string  `json:"start_time"`
	API       APIInfo `json:"api"`
}

// APIInfo describes the limits the note endpoints enforce
type APIInfo struct {
	DefaultTuning string `json:"default_tuning"`
	MaxBatchSize  int    `json:"max_batch_size"`
	MaxNote       int    `json:"max_note"`
	CloudWatch    bool   `json:"cloudwatch"`
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, MetricsResponse{
		Status:    "healthy",
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		StartTime: h.startTime.UTC().Format(time.RFC3339),
		API: APIInfo{
			DefaultTuning: h.cfg.Tuning().String(),
			MaxBatchSize:  h.cfg.MaxBatchSize,
			MaxNote:       note.MaxNoteNumber,
			CloudWatch:    h.cloudwatch.Enabled(),
		},
	})
}
