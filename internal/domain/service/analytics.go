package service

import (
	"context"

	"FinAdvisor/internal/domain/models"
)

// Projector extrapolates future prices from a close series.
type Projector interface {
	Project(closes []float64, window, horizon int) (models.Projection, error)
}

// CurrencyConverter converts amounts into the display currency.
type CurrencyConverter interface {
	ConvertAll(ctx context.Context, amounts []float64) ([]float64, error)
	Target() string
}

// TickerClassifier decides whether a ticker is priced for conversion.
type TickerClassifier interface {
	IsIndian(ticker string) bool
}
