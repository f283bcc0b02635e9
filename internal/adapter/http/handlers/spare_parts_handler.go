package handlers

import (
	response "mototrackr/internal/adapter/http/dto/response"
	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase"
	"mototrackr/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SparePartsHandler proxies the remote inventory browse for the mechanic
// dashboard.

type SparePartsHandler struct {
	usecase usecase.ISparePartsUseCase
}

func NewSparePartsHandler(uc usecase.ISparePartsUseCase) *SparePartsHandler {
	return &SparePartsHandler{usecase: uc}
}

func (h *SparePartsHandler) ListParts(c *gin.Context) {
	query := entities.SparePartQuery{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		LowStockOnly: c.Query("low_stock_only") == "true",
	}
	if skip, err := strconv.Atoi(c.Query("skip")); err == nil && skip > 0 {
		query.Skip = skip
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		query.Limit = limit
	}

	parts, err := h.usecase.ListParts(c.Request.Context(), query)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSpareParts(parts))
}
