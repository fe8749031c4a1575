package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/infrastructure/models"
	"fantera.backend/pkg/utils"
)

// ClubRepository implements club data operations
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// GetByID gets a club by ID
func (r *ClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Club, error) {
	var m models.Club
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListActive lists all active clubs
func (r *ClubRepository) ListActive(ctx context.Context) ([]*entities.Club, error) {
	var clubModels []models.Club
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&clubModels).Error; err != nil {
		return nil, err
	}

	clubs := make([]*entities.Club, 0, len(clubModels))
	for i := range clubModels {
		clubs = append(clubs, r.toEntity(&clubModels[i]))
	}
	return clubs, nil
}

// ListActiveRefs returns id+ticker for all active clubs
func (r *ClubRepository) ListActiveRefs(ctx context.Context) ([]entities.ClubRef, error) {
	var rows []struct {
		ID     uuid.UUID
		Ticker string
	}
	if err := r.db.WithContext(ctx).Model(&models.Club{}).
		Select("id", "ticker").
		Where("is_active = ?", true).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	refs := make([]entities.ClubRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, entities.ClubRef{ID: row.ID, Ticker: row.Ticker})
	}
	return refs, nil
}

// Create creates a new club (seeding path)
func (r *ClubRepository) Create(ctx context.Context, club *entities.Club) error {
	m := &models.Club{
		ID:            club.ID,
		Name:          club.Name,
		Ticker:        club.Ticker,
		Exchange:      club.Exchange,
		CrestURL:      club.CrestURL,
		Primary:       club.ColorConfig.Primary,
		Secondary:     club.ColorConfig.Secondary,
		GradientStart: club.ColorConfig.GradientStart,
		GradientEnd:   club.ColorConfig.GradientEnd,
		GlowColor:     club.ColorConfig.GlowColor,
		IsActive:      club.IsActive,
	}
	if m.ID == uuid.Nil {
		m.ID = utils.NewID()
	}
	// gorm skips zero-valued fields that carry a column default, which
	// would turn IsActive=false into the default true. Select all columns
	// so seeded inactive clubs stay inactive.
	if err := r.db.WithContext(ctx).Select("*").Create(m).Error; err != nil {
		return err
	}
	club.ID = m.ID
	return nil
}

func (r *ClubRepository) toEntity(m *models.Club) *entities.Club {
	return &entities.Club{
		ID:       m.ID,
		Name:     m.Name,
		Ticker:   m.Ticker,
		Exchange: m.Exchange,
		CrestURL: m.CrestURL,
		ColorConfig: entities.ColorConfig{
			Primary:       m.Primary,
			Secondary:     m.Secondary,
			GradientStart: m.GradientStart,
			GradientEnd:   m.GradientEnd,
			GlowColor:     m.GlowColor,
		},
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
