package repository

import (
	"context"
	"time"

	"FinAdvisor/internal/domain/models"
)

// PriceProvider returns the daily price series for an inclusive date range.
// Failures wrap models.ErrDataUnavailable.
type PriceProvider interface {
	FetchSeries(ctx context.Context, ticker string, start, end time.Time) (models.PriceSeries, error)
}

// RateProvider returns how many `to` units one `from` unit buys.
// Failures wrap models.ErrRateUnavailable.
type RateProvider interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

type Metrics interface {
	RecordFetch(source, ticker string)
	RecordCacheLookup(hit bool)
	RecordError(kind string)
	RecordPrediction(ticker string, price float64)
	RecordLatency(op string, seconds float64)
}
