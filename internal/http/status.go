package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse is the body returned by the status endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}

// StatusHandler handles HTTP requests for the service status endpoint.
type StatusHandler struct {
	version string
	logger  *slog.Logger
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(version string, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		version: version,
		logger:  logger,
	}
}

// GetStatusHandler reports service availability.
// GET /v1/status - No authentication required.
func (h *StatusHandler) GetStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Version: h.version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
