package marketdata

import (
	"context"
	"math"

	"go.uber.org/zap"

	"fantera.backend/pkg/logger"
)

// Normalize turns raw snapshots into clean price records. Per ticker the
// current price is the daily-bar close, else the latest-trade price, else 0;
// tickers resolving to 0 are skipped (no valid data, not an error). Change
// percent is computed against the previous daily close when positive, else 0,
// rounded to two decimals. Nil snapshot entries are skipped silently and
// output order follows input order.
func Normalize(snapshots []*Snapshot) []PriceFeedResult {
	results := make([]PriceFeedResult, 0, len(snapshots))

	for _, snapshot := range snapshots {
		if snapshot == nil {
			continue
		}

		currentPrice := 0.0
		if snapshot.DailyBar != nil {
			currentPrice = snapshot.DailyBar.Close
		} else if snapshot.LatestTrade != nil {
			currentPrice = snapshot.LatestTrade.Price
		}

		if currentPrice == 0 {
			logger.Warn(context.Background(), "skipping ticker: no valid price data",
				zap.String("ticker", snapshot.Symbol))
			continue
		}

		prevClose := 0.0
		if snapshot.PrevDailyBar != nil {
			prevClose = snapshot.PrevDailyBar.Close
		}

		changePct := 0.0
		if prevClose > 0 {
			changePct = roundTo2((currentPrice - prevClose) / prevClose * 100)
		}

		results = append(results, PriceFeedResult{
			Ticker:    snapshot.Symbol,
			Price:     currentPrice,
			ChangePct: changePct,
		})
	}

	return results
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
