package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/pkg/logger"
)

type WebhookService interface {
	HandleEvent(ctx context.Context, event *identity.WebhookEvent) error
}

// WebhookHandler handles identity-provider webhooks
type WebhookHandler struct {
	verifier       identity.WebhookVerifier
	webhookUsecase WebhookService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(verifier identity.WebhookVerifier, webhookUsecase WebhookService) *WebhookHandler {
	return &WebhookHandler{
		verifier:       verifier,
		webhookUsecase: webhookUsecase,
	}
}

// HandleWebhook verifies and processes an identity webhook delivery. Every
// failure mode returns the same 400 body so the response leaks nothing
// about which check failed.
// POST /api/auth/webhook
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.reject(c, "body read failed", err)
		return
	}

	event, err := h.verifier.VerifyWebhook(
		body,
		c.GetHeader("svix-id"),
		c.GetHeader("svix-timestamp"),
		c.GetHeader("svix-signature"),
	)
	if err != nil {
		h.reject(c, "verification failed", err)
		return
	}

	if err := h.webhookUsecase.HandleEvent(c.Request.Context(), event); err != nil {
		h.reject(c, "event processing failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) reject(c *gin.Context, reason string, err error) {
	logger.Warn(c.Request.Context(), "webhook rejected", zap.String("reason", reason), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook"})
}
