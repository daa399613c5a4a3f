package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LogHandler serves the audit log endpoint.
type LogHandler struct {
	svc LogService
	log *logrus.Logger
}

// NewLogHandler creates a LogHandler with the given service and logger.
func NewLogHandler(svc LogService, log *logrus.Logger) *LogHandler {
	return &LogHandler{svc: svc, log: log}
}

// List handles GET /logs/: every audit entry, unfiltered, in insertion order.
func (h *LogHandler) List(c *gin.Context) {
	entries, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing logs")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, entries)
}
