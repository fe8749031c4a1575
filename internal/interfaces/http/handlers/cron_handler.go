package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/internal/interfaces/http/response"
)

type PriceSyncService interface {
	Sync(ctx context.Context) (*entities.PriceSyncResult, error)
}

// CronHandler handles scheduler-triggered system endpoints. These are
// authenticated with a shared secret, not a user token.
type CronHandler struct {
	secret      string
	syncUsecase PriceSyncService
}

// NewCronHandler creates a new cron handler
func NewCronHandler(secret string, syncUsecase PriceSyncService) *CronHandler {
	return &CronHandler{
		secret:      secret,
		syncUsecase: syncUsecase,
	}
}

// SyncPrices runs one price refresh cycle
// GET /api/cron/prices
func (h *CronHandler) SyncPrices(c *gin.Context) {
	if !h.authorized(c) {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.syncUsecase.Sync(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// authorized requires an exact shared-secret bearer match. An empty
// configured secret rejects everything rather than waving requests through.
func (h *CronHandler) authorized(c *gin.Context) bool {
	if h.secret == "" {
		return false
	}
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
