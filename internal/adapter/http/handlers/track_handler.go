package handlers

import (
	"errors"
	response "mototrackr/internal/adapter/http/dto/response"
	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase"
	"mototrackr/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TrackHandler serves the public customer lookup. No authentication: anyone
// holding a job id, plate or phone may check progress.

type TrackHandler struct {
	usecase usecase.ITrackUseCase
}

func NewTrackHandler(uc usecase.ITrackUseCase) *TrackHandler {
	return &TrackHandler{usecase: uc}
}

// Track resolves ?id=, ?plate= or ?phone= (first match in that order).
//
// Phone lookups branch on match count: zero is not found, exactly one goes
// straight to the status view, more than one becomes the history view.
func (h *TrackHandler) Track(c *gin.Context) {
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		job, err := h.usecase.TrackByID(c.Request.Context(), id)
		if err != nil {
			appErr := mapTrackError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.StatusView(job))
		return
	}

	if plate := strings.TrimSpace(c.Query("plate")); plate != "" {
		job, err := h.usecase.TrackByPlate(c.Request.Context(), plate)
		if err != nil {
			appErr := mapTrackError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.StatusView(job))
		return
	}

	if phone := strings.TrimSpace(c.Query("phone")); phone != "" {
		jobs, err := h.usecase.TrackByPhone(c.Request.Context(), phone)
		if err != nil {
			appErr := mapTrackError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		switch len(jobs) {
		case 0:
			appErr := pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case 1:
			c.JSON(http.StatusOK, response.StatusView(jobs[0]))
		default:
			c.JSON(http.StatusOK, response.HistoryView(entities.CustomerFromJobs(jobs), jobs))
		}
		return
	}

	appErr := pkg.NewDomainErrorSimple("MISSING_LOOKUP_KEY", "Provide id, plate or phone", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// History always returns the full history view for a phone, regardless of
// match count. Used by the mechanic dashboard.
func (h *TrackHandler) History(c *gin.Context) {
	customer, jobs, err := h.usecase.History(c.Request.Context(), c.Query("phone"))
	if err != nil {
		appErr := mapTrackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(jobs) == 0 {
		appErr := pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.HistoryView(customer, jobs))
}

func mapTrackError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidPlate),
		errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
