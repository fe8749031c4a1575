package entities

import (
	"time"

	"github.com/google/uuid"
)

// StaleThreshold is how old a price may get before it is considered stale
// for display purposes.
const StaleThreshold = 120 * time.Second

// Price is the mutable "current price" record for exactly one club.
// The unique constraint on ClubID makes upserts last-write-wins.
type Price struct {
	ID        uuid.UUID `json:"id"`
	ClubID    uuid.UUID `json:"clubId"`
	Price     float64   `json:"price"`
	ChangePct float64   `json:"changePct"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsStale reports whether the price is older than the threshold
func (p *Price) IsStale(threshold time.Duration) bool {
	return IsPriceStale(p.UpdatedAt, threshold)
}

// IsPriceStale reports whether a price updated at the given time is older
// than the threshold. A zero threshold falls back to StaleThreshold.
func IsPriceStale(updatedAt time.Time, threshold time.Duration) bool {
	if threshold <= 0 {
		threshold = StaleThreshold
	}
	return time.Since(updatedAt) > threshold
}

// PricePoint is the API projection of a club's latest price
type PricePoint struct {
	ClubID    uuid.UUID `json:"clubId"`
	Ticker    string    `json:"ticker"`
	Price     float64   `json:"price"`
	ChangePct float64   `json:"changePct"`
	UpdatedAt string    `json:"updatedAt"`
	Stale     bool      `json:"stale"`
}

// PriceSyncResult reports the outcome of one sync run
type PriceSyncResult struct {
	Updated   int    `json:"updated"`
	Timestamp string `json:"timestamp"`
}
