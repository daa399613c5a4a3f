// Package api provides HTTP handlers for the person registry.
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

// PersonHandler serves person CRUD endpoints.
type PersonHandler struct {
	svc PersonService
	log *logrus.Logger
}

// NewPersonHandler creates a PersonHandler with the given service and logger.
func NewPersonHandler(svc PersonService, log *logrus.Logger) *PersonHandler {
	return &PersonHandler{svc: svc, log: log}
}

// pathID parses the :id path parameter, responding 422 on a malformed value.
// Returns 0 when the response has already been written.
func pathID(c *gin.Context) int64 {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())

		return 0
	}

	return id
}

// notFoundMessage mirrors the wording the original service's frontend expects.
func notFoundMessage(id int64) string {
	return fmt.Sprintf("Person ID %d not found", id)
}

// Create handles POST /people/. The success status is 200, not 201, for
// compatibility with the original service.
func (h *PersonHandler) Create(c *gin.Context) {
	var req models.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())

		return
	}

	person, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.log.WithError(err).Error("creating person")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.MutationsTotal.WithLabelValues(models.OpCreate).Inc()
	h.log.WithFields(logrus.Fields{"action": "person.create", "person_id": person.ID}).Info("audit")

	c.JSON(http.StatusOK, person)
}

// List handles GET /people/.
func (h *PersonHandler) List(c *gin.Context) {
	opts := models.ListPeopleOpts{
		Skip:         parseOffset(c.DefaultQuery("skip", "0")),
		Limit:        parseInt(c.DefaultQuery("limit", "100"), 100),
		FilterColumn: c.Query("filter_column"),
		FilterValue:  c.Query("filter_value"),
		Keyword:      c.Query("keyword"),
	}

	if err := opts.Validate(); err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())

		return
	}

	people, err := h.svc.List(c.Request.Context(), opts)
	if err != nil {
		h.log.WithError(err).Error("listing people")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, people)
}

// Get handles GET /people/:id.
func (h *PersonHandler) Get(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		return
	}

	person, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, notFoundMessage(id))

			return
		}

		h.log.WithError(err).Error("getting person")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, person)
}

// Update handles PUT /people/:id.
func (h *PersonHandler) Update(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		return
	}

	var req models.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())

		return
	}

	person, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, notFoundMessage(id))

			return
		}

		h.log.WithError(err).Error("updating person")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.MutationsTotal.WithLabelValues(models.OpUpdate).Inc()
	h.log.WithFields(logrus.Fields{"action": "person.update", "person_id": id}).Info("audit")

	c.JSON(http.StatusOK, person)
}

// Delete handles DELETE /people/:id. The body is a bare JSON string, as the
// original service returned.
func (h *PersonHandler) Delete(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, notFoundMessage(id))

			return
		}

		h.log.WithError(err).Error("deleting person")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.MutationsTotal.WithLabelValues(models.OpDelete).Inc()
	h.log.WithFields(logrus.Fields{"action": "person.delete", "person_id": id}).Info("audit")

	c.JSON(http.StatusOK, fmt.Sprintf("Person ID %d successfully deleted", id))
}
