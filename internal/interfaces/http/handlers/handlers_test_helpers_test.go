package handlers_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authenticated simulates AuthMiddleware having run for the given DID
func authenticated(privyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PrivyIDKey, privyID)
		c.Next()
	}
}

type stubKYCService struct {
	submitResp *entities.KYCStatusResponse
	submitErr  error
	statusResp *entities.KYCStatusResponse
	statusErr  error
}

func (s *stubKYCService) Submit(ctx context.Context, privyID string, input *entities.KYCSubmitInput) (*entities.KYCStatusResponse, error) {
	return s.submitResp, s.submitErr
}

func (s *stubKYCService) CheckStatus(ctx context.Context, privyID string) (*entities.KYCStatusResponse, error) {
	return s.statusResp, s.statusErr
}

type stubClubService struct {
	list      []entities.ClubSummary
	listErr   error
	detail    *entities.ClubDetail
	detailErr error
}

func (s *stubClubService) List(ctx context.Context) ([]entities.ClubSummary, error) {
	return s.list, s.listErr
}

func (s *stubClubService) GetDetail(ctx context.Context, clubID uuid.UUID) (*entities.ClubDetail, error) {
	return s.detail, s.detailErr
}

type stubPriceService struct {
	points []entities.PricePoint
	err    error
}

func (s *stubPriceService) List(ctx context.Context) ([]entities.PricePoint, error) {
	return s.points, s.err
}

type stubSyncService struct {
	result *entities.PriceSyncResult
	err    error
}

func (s *stubSyncService) Sync(ctx context.Context) (*entities.PriceSyncResult, error) {
	return s.result, s.err
}

type stubWebhookVerifier struct {
	event *identity.WebhookEvent
	err   error
}

func (s *stubWebhookVerifier) VerifyWebhook(body []byte, msgID, timestamp, signature string) (*identity.WebhookEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.event, nil
}

type stubWebhookService struct {
	err    error
	events []*identity.WebhookEvent
}

func (s *stubWebhookService) HandleEvent(ctx context.Context, event *identity.WebhookEvent) error {
	s.events = append(s.events, event)
	return s.err
}
