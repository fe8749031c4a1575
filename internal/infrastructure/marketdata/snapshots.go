package marketdata

import "context"

// Trade is the latest trade leg of a snapshot
type Trade struct {
	Price float64 `json:"p"`
}

// Bar is a daily OHLC bar; only the close is used here
type Bar struct {
	Close float64 `json:"c"`
}

// Snapshot is a market-data provider's combined payload for one ticker:
// latest trade, current daily bar and previous daily bar.
type Snapshot struct {
	Symbol       string `json:"symbol"`
	LatestTrade  *Trade `json:"latestTrade"`
	DailyBar     *Bar   `json:"dailyBar"`
	PrevDailyBar *Bar   `json:"prevDailyBar"`
}

// PriceFeedResult is one normalized price record
type PriceFeedResult struct {
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"changePct"`
}

// SnapshotFetcher is the market-data capability consumed by the price sync.
// Implementations fetch all tickers in a single batched call; entries for
// tickers the provider has no data for may be nil.
type SnapshotFetcher interface {
	GetSnapshots(ctx context.Context, tickers []string) ([]*Snapshot, error)
}
