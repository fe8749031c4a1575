package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/internal/interfaces/http/response"
)

type PriceService interface {
	List(ctx context.Context) ([]entities.PricePoint, error)
}

// PriceHandler handles the latest-prices endpoint
type PriceHandler struct {
	priceUsecase PriceService
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(priceUsecase PriceService) *PriceHandler {
	return &PriceHandler{priceUsecase: priceUsecase}
}

// List returns one latest price point per active club
// GET /api/prices
func (h *PriceHandler) List(c *gin.Context) {
	prices, err := h.priceUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, prices)
}
