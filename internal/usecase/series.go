package usecase

import (
	"context"
	"fmt"
	"time"

	"FinAdvisor/internal/domain/models"
	domrepo "FinAdvisor/internal/domain/repository"
	"FinAdvisor/pkg/util"
)

// SeriesUseCase provides the raw price history for a ticker.
type SeriesUseCase struct {
	prices domrepo.PriceProvider
	now    func() time.Time
}

func NewSeriesUseCase(prices domrepo.PriceProvider) *SeriesUseCase {
	return &SeriesUseCase{prices: prices, now: time.Now}
}

type GetSeriesParams struct {
	Ticker string
	Start  time.Time
	// End defaults to today when zero.
	End time.Time
}

type GetSeriesResult struct {
	Ticker string            `json:"ticker"`
	Start  time.Time         `json:"start"`
	End    time.Time         `json:"end"`
	Count  int               `json:"count"`
	Bars   []models.PriceBar `json:"bars"`
}

func (uc *SeriesUseCase) GetSeries(ctx context.Context, p GetSeriesParams) (*GetSeriesResult, error) {
	ticker, start, end, err := normalizeRange(p.Ticker, p.Start, p.End, uc.now)
	if err != nil {
		return nil, err
	}

	s, err := uc.prices.FetchSeries(ctx, ticker, start, end)
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}

	return &GetSeriesResult{
		Ticker: ticker,
		Start:  start,
		End:    end,
		Count:  len(s.Bars),
		Bars:   s.Bars,
	}, nil
}

func normalizeRange(ticker string, start, end time.Time, now func() time.Time) (string, time.Time, time.Time, error) {
	ticker = util.NormalizeTicker(ticker)
	if ticker == "" {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: ticker required", models.ErrDataUnavailable)
	}
	if end.IsZero() {
		end = now()
	}
	start, end = util.Day(start), util.Day(end)
	if start.After(end) {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: start %s is after end %s", models.ErrInvalidRange,
			start.Format(util.DateLayout), end.Format(util.DateLayout))
	}
	return ticker, start, end, nil
}
