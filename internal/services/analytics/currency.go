package analytics

import (
	"context"
	"fmt"

	"FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// Converter turns USD amounts into a target currency using a live rate.
type Converter struct {
	rates    repository.RateProvider
	from, to string
}

func NewConverter(rates repository.RateProvider, from, to string) *Converter {
	return &Converter{rates: rates, from: from, to: to}
}

func (c *Converter) Target() string { return c.to }

// ConvertAll fetches the rate once and applies it to every amount.
// Any failure wraps models.ErrRateUnavailable.
func (c *Converter) ConvertAll(ctx context.Context, amounts []float64) ([]float64, error) {
	rate, err := c.rates.Rate(ctx, c.from, c.to)
	if err != nil {
		return nil, fmt.Errorf("%w: %s->%s: %w", models.ErrRateUnavailable, c.from, c.to, err)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: non-positive rate %v", models.ErrRateUnavailable, rate)
	}
	out := make([]float64, len(amounts))
	for i, a := range amounts {
		out[i] = Convert(a, rate)
	}
	return out, nil
}

// Convert multiplies amount by rate in decimal arithmetic.
func Convert(amount, rate float64) float64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).InexactFloat64()
}
