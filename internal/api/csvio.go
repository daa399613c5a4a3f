package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/registrohq/registro/internal/metrics"
	"github.com/registrohq/registro/internal/models"
)

// exportFilename is the attachment name the original frontend saves as.
const exportFilename = "filtered_people.csv"

// CSVHandler serves the CSV bulk import/export endpoints.
type CSVHandler struct {
	svc CSVService
	log *logrus.Logger
}

// NewCSVHandler creates a CSVHandler with the given service and logger.
func NewCSVHandler(svc CSVService, log *logrus.Logger) *CSVHandler {
	return &CSVHandler{svc: svc, log: log}
}

// isCSVValidationErr reports whether an import failure is the caller's fault
// (bad file or bad row) rather than a server-side one.
func isCSVValidationErr(err error) bool {
	return errors.Is(err, models.ErrBadCSV) ||
		errors.Is(err, models.ErrMissingName) ||
		errors.Is(err, models.ErrMissingGender) ||
		errors.Is(err, models.ErrMissingNationality) ||
		errors.Is(err, models.ErrMissingBirthdate)
}

// Upload handles POST /people/upload (multipart form, field "file").
func (h *CSVHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeInvalidRequest, "file field is required")

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeInvalidRequest, "unreadable file")

		return
	}
	defer file.Close() //nolint:errcheck // read-only temp file.

	created, err := h.svc.Ingest(c.Request.Context(), file)

	metrics.CSVRowsImported.Add(float64(created))

	if err != nil {
		if isCSVValidationErr(err) {
			respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("ingesting csv")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "person.import", "rows": created}).Info("audit")

	c.JSON(http.StatusOK, gin.H{
		"created_people": fmt.Sprintf("%d records successfully added to the database.", created),
	})
}

// Download handles POST /people/download (JSON body: array of ids). The
// response is a CSV attachment.
func (h *CSVHandler) Download(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	data, err := h.svc.Export(c.Request.Context(), ids)
	if err != nil {
		if errors.Is(err, models.ErrNoExportRows) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "No records found")

			return
		}

		h.log.WithError(err).Error("exporting csv")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename)
	c.Data(http.StatusOK, "text/csv", data)
}
