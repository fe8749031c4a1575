package usecases

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/domain/repositories"
)

// ClubUsecase serves the club catalogue views
type ClubUsecase struct {
	clubRepo  repositories.ClubRepository
	priceRepo repositories.PriceRepository
}

// NewClubUsecase creates a new club usecase
func NewClubUsecase(clubRepo repositories.ClubRepository, priceRepo repositories.PriceRepository) *ClubUsecase {
	return &ClubUsecase{
		clubRepo:  clubRepo,
		priceRepo: priceRepo,
	}
}

// List returns all active clubs with their latest price attached, sorted by
// price descending. Clubs without a price row get zero values rather than
// being dropped.
func (u *ClubUsecase) List(ctx context.Context) ([]entities.ClubSummary, error) {
	clubs, err := u.clubRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := u.latestByClub(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]entities.ClubSummary, 0, len(clubs))
	for _, club := range clubs {
		summary := entities.ClubSummary{
			ID:          club.ID,
			Name:        club.Name,
			Ticker:      club.Ticker,
			Exchange:    club.Exchange,
			CrestURL:    club.CrestURL,
			ColorConfig: club.ColorConfig,
		}
		if price, ok := latest[club.ID]; ok {
			summary.Price = price.Price
			summary.ChangePct = price.ChangePct
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Price > summaries[j].Price
	})
	return summaries, nil
}

// GetDetail returns a single active club with defaulted palette, latest
// price and editorial metadata. Inactive and unknown ids both surface as
// not found.
func (u *ClubUsecase) GetDetail(ctx context.Context, clubID uuid.UUID) (*entities.ClubDetail, error) {
	club, err := u.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("NOT_FOUND", "Club not found")
		}
		return nil, err
	}
	if !club.IsActive {
		return nil, domainerrors.NotFound("NOT_FOUND", "Club not found")
	}

	detail := &entities.ClubDetail{
		ID:          club.ID,
		Name:        club.Name,
		Ticker:      club.Ticker,
		Exchange:    club.Exchange,
		CrestURL:    club.CrestURL,
		ColorConfig: club.ColorConfig.WithDefaults(),
		Currency:    GetCurrencySymbol(club.Exchange),
		About:       GetClubMetadata(club.Ticker),
	}

	price, err := u.priceRepo.GetByClubID(ctx, clubID)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}
	if price != nil {
		detail.Price = price.Price
		detail.ChangePct = price.ChangePct
	}
	return detail, nil
}

// latestByClub collapses the price list into one latest row per club. The
// repository returns rows newest first, so the first hit per club wins.
func (u *ClubUsecase) latestByClub(ctx context.Context) (map[uuid.UUID]*entities.Price, error) {
	prices, err := u.priceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	latest := make(map[uuid.UUID]*entities.Price, len(prices))
	for _, price := range prices {
		if _, ok := latest[price.ClubID]; !ok {
			latest[price.ClubID] = price
		}
	}
	return latest, nil
}
