package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/infrastructure/models"
	"fantera.backend/pkg/utils"
)

// PriceRepository implements latest-price data operations
type PriceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// Upsert writes a club's latest price, creating the row on first sight and
// overwriting price, change and timestamp afterwards (last write wins).
func (r *PriceRepository) Upsert(ctx context.Context, price *entities.Price) error {
	m := &models.Price{
		ID:        utils.NewID(),
		ClubID:    price.ClubID,
		Price:     price.Price,
		ChangePct: price.ChangePct,
		UpdatedAt: time.Now(),
	}
	if !price.UpdatedAt.IsZero() {
		m.UpdatedAt = price.UpdatedAt
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "change_pct", "updated_at"}),
	}).Create(m).Error
}

// GetByClubID gets the latest price for a club
func (r *PriceRepository) GetByClubID(ctx context.Context, clubID uuid.UUID) (*entities.Price, error) {
	var m models.Price
	if err := r.db.WithContext(ctx).Where("club_id = ?", clubID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns all latest prices, newest first
func (r *PriceRepository) List(ctx context.Context) ([]*entities.Price, error) {
	var priceModels []models.Price
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&priceModels).Error; err != nil {
		return nil, err
	}

	prices := make([]*entities.Price, 0, len(priceModels))
	for i := range priceModels {
		prices = append(prices, r.toEntity(&priceModels[i]))
	}
	return prices, nil
}

func (r *PriceRepository) toEntity(m *models.Price) *entities.Price {
	return &entities.Price{
		ID:        m.ID,
		ClubID:    m.ClubID,
		Price:     m.Price,
		ChangePct: m.ChangePct,
		UpdatedAt: m.UpdatedAt,
	}
}
