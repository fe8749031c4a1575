package entities

import (
	"time"

	"github.com/google/uuid"
)

// ColorConfig holds a club's branding palette
type ColorConfig struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	GradientStart string `json:"gradientStart"`
	GradientEnd   string `json:"gradientEnd"`
	GlowColor     string `json:"glowColor"`
}

// Default palette fields applied when a club's stored config is partial.
const (
	DefaultPrimaryColor   = "#1a1a2e"
	DefaultSecondaryColor = "#ffffff"
	DefaultGradientEnd    = "#000000"
)

// WithDefaults fills missing palette fields. GradientStart and GlowColor
// fall back to the (possibly defaulted) primary color.
func (c ColorConfig) WithDefaults() ColorConfig {
	out := c
	if out.Primary == "" {
		out.Primary = DefaultPrimaryColor
	}
	if out.Secondary == "" {
		out.Secondary = DefaultSecondaryColor
	}
	if out.GradientStart == "" {
		out.GradientStart = out.Primary
	}
	if out.GradientEnd == "" {
		out.GradientEnd = DefaultGradientEnd
	}
	if out.GlowColor == "" {
		out.GlowColor = out.Primary
	}
	return out
}

// Club represents a tradable football-club equity
type Club struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Ticker      string      `json:"ticker"`
	Exchange    string      `json:"exchange"`
	CrestURL    string      `json:"crestUrl"`
	ColorConfig ColorConfig `json:"colorConfig"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeletedAt   *time.Time  `json:"-"`
}

// ClubRef is the id+ticker projection used by the price sync
type ClubRef struct {
	ID     uuid.UUID
	Ticker string
}

// ClubMetadata holds static descriptive copy keyed by ticker
type ClubMetadata struct {
	Country       string `json:"country"`
	League        string `json:"league"`
	MarketContext string `json:"marketContext"`
}

// ClubSummary is the list-view projection with the latest price attached
type ClubSummary struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Ticker      string      `json:"ticker"`
	Exchange    string      `json:"exchange"`
	CrestURL    string      `json:"crestUrl"`
	ColorConfig ColorConfig `json:"colorConfig"`
	Price       float64     `json:"price"`
	ChangePct   float64     `json:"changePct"`
}

// ClubDetail is the detail-view projection
type ClubDetail struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Ticker      string       `json:"ticker"`
	Exchange    string       `json:"exchange"`
	CrestURL    string       `json:"crestUrl"`
	ColorConfig ColorConfig  `json:"colorConfig"`
	Price       float64      `json:"price"`
	ChangePct   float64      `json:"changePct"`
	Currency    string       `json:"currency"`
	About       ClubMetadata `json:"about"`
}
