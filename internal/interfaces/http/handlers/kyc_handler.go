package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/interfaces/http/middleware"
	"fantera.backend/internal/interfaces/http/response"
)

type KYCService interface {
	Submit(ctx context.Context, privyID string, input *entities.KYCSubmitInput) (*entities.KYCStatusResponse, error)
	CheckStatus(ctx context.Context, privyID string) (*entities.KYCStatusResponse, error)
}

// KYCHandler handles the verification endpoints
type KYCHandler struct {
	kycUsecase KYCService
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycUsecase KYCService) *KYCHandler {
	return &KYCHandler{kycUsecase: kycUsecase}
}

// Submit starts verification for the authenticated user
// POST /api/auth/kyc
func (h *KYCHandler) Submit(c *gin.Context) {
	privyID, ok := middleware.GetPrivyID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.KYCSubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation("VALIDATION_ERROR", "Invalid request body"))
		return
	}

	result, err := h.kycUsecase.Submit(c.Request.Context(), privyID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Status returns the authenticated user's current verification status
// GET /api/auth/kyc
func (h *KYCHandler) Status(c *gin.Context) {
	privyID, ok := middleware.GetPrivyID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	result, err := h.kycUsecase.CheckStatus(c.Request.Context(), privyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
