package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/interfaces/http/response"
)

type ClubService interface {
	List(ctx context.Context) ([]entities.ClubSummary, error)
	GetDetail(ctx context.Context, clubID uuid.UUID) (*entities.ClubDetail, error)
}

// ClubHandler handles the club catalogue endpoints
type ClubHandler struct {
	clubUsecase ClubService
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubUsecase ClubService) *ClubHandler {
	return &ClubHandler{clubUsecase: clubUsecase}
}

// List returns all active clubs with latest prices
// GET /api/clubs
func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.clubUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, clubs)
}

// GetByID returns one club's detail view
// GET /api/clubs/:clubId
func (h *ClubHandler) GetByID(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		// Unparseable ids behave like unknown clubs.
		response.Error(c, domainerrors.NotFound("NOT_FOUND", "Club not found"))
		return
	}

	detail, err := h.clubUsecase.GetDetail(c.Request.Context(), clubID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}
