package handlers

import (
	"errors"
	response "mototrackr/internal/adapter/http/dto/response"
	"mototrackr/internal/usecase"
	"mototrackr/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the per-job message audit trail.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListByJob(c *gin.Context) {
	entries, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationLogs(entries))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
