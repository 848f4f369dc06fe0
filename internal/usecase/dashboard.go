package usecase

import (
	"context"
	"fmt"
	"time"

	"FinAdvisor/internal/domain/models"
	domrepo "FinAdvisor/internal/domain/repository"
	domservice "FinAdvisor/internal/domain/service"
	"FinAdvisor/internal/services/analytics"
	"FinAdvisor/internal/services/features"
	applogger "FinAdvisor/pkg/logger"
	"FinAdvisor/pkg/util"
)

// RateWarning is shown when predictions stay in USD for an allow-listed ticker.
const RateWarning = "Could not fetch conversion rates. Showing price in USD."

// DashboardUseCase assembles everything the dashboard page shows for one request.
type DashboardUseCase struct {
	prices     domrepo.PriceProvider
	projector  domservice.Projector
	converter  domservice.CurrencyConverter
	classifier domservice.TickerClassifier
	metrics    domrepo.Metrics
	tailRows   int
	l          *applogger.Logger
	now        func() time.Time
}

func NewDashboardUseCase(
	prices domrepo.PriceProvider,
	projector domservice.Projector,
	converter domservice.CurrencyConverter,
	classifier domservice.TickerClassifier,
	tailRows int,
) *DashboardUseCase {
	if tailRows <= 0 {
		tailRows = 5
	}
	return &DashboardUseCase{
		prices:     prices,
		projector:  projector,
		converter:  converter,
		classifier: classifier,
		tailRows:   tailRows,
		l:          applogger.Nop(),
		now:        time.Now,
	}
}

// SetLogger injects a structured logger.
func (uc *DashboardUseCase) SetLogger(l *applogger.Logger) {
	if l != nil {
		uc.l = l
	}
}

func (uc *DashboardUseCase) SetMetrics(m domrepo.Metrics) { uc.metrics = m }

type DashboardParams struct {
	Ticker  string
	Start   time.Time
	End     time.Time
	Window  int
	Horizon int
}

type DashboardResult struct {
	Ticker          string              `json:"ticker"`
	Start           time.Time           `json:"start"`
	End             time.Time           `json:"end"`
	Window          int                 `json:"window"`
	Horizon         int                 `json:"horizon"`
	Tail            []models.PriceBar   `json:"tail"`
	Closes          []models.Point      `json:"closes"`
	MovingAverage   []models.Point      `json:"moving_average"`
	Predictions     []models.Prediction `json:"predictions"`
	Trend           models.Trend        `json:"trend"`
	TrendSentence   string              `json:"trend_sentence"`
	SourceCurrency  string              `json:"source_currency,omitempty"`
	DisplayCurrency string              `json:"display_currency"`
	Warnings        []string            `json:"warnings,omitempty"`
}

// Build fetches the series and derives the moving average, projection and
// optional INR conversion. A rate failure degrades to USD with a warning;
// every other failure is returned.
func (uc *DashboardUseCase) Build(ctx context.Context, p DashboardParams) (*DashboardResult, error) {
	began := time.Now()
	defer func() {
		if uc.metrics != nil {
			uc.metrics.RecordLatency("dashboard_build", time.Since(began).Seconds())
		}
	}()

	ticker, start, end, err := normalizeRange(p.Ticker, p.Start, p.End, uc.now)
	if err != nil {
		return nil, err
	}

	series, err := uc.prices.FetchSeries(ctx, ticker, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}
	if len(series.Bars) == 0 {
		return nil, fmt.Errorf("fetch %s: %w", ticker, models.ErrDataUnavailable)
	}

	proj, err := uc.projector.Project(series.Closes(), p.Window, p.Horizon)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", ticker, err)
	}
	ma, err := features.MovingAveragePoints(series, p.Window)
	if err != nil {
		return nil, fmt.Errorf("moving average %s: %w", ticker, err)
	}

	dates := util.NextDays(series.LastDate(), len(proj.Prices))
	preds := make([]models.Prediction, len(proj.Prices))
	for i, price := range proj.Prices {
		preds[i] = models.Prediction{Date: dates[i], Price: price}
	}

	res := &DashboardResult{
		Ticker:          ticker,
		Start:           start,
		End:             end,
		Window:          p.Window,
		Horizon:         p.Horizon,
		Tail:            features.Tail(series.Bars, uc.tailRows),
		Closes:          features.ClosePoints(series),
		MovingAverage:   ma,
		Predictions:     preds,
		Trend:           proj.Trend,
		TrendSentence:   analytics.TrendSentence(proj.Trend),
		SourceCurrency:  series.Currency,
		DisplayCurrency: "USD",
	}

	if uc.classifier != nil && uc.converter != nil && uc.classifier.IsIndian(ticker) {
		uc.convert(ctx, res, proj.Prices)
	}

	if uc.metrics != nil && len(proj.Prices) > 0 {
		uc.metrics.RecordPrediction(ticker, proj.Prices[len(proj.Prices)-1])
	}

	uc.l.Info("dashboard built",
		applogger.String("ticker", ticker),
		applogger.Int("bars", len(series.Bars)),
		applogger.Int("window", p.Window),
		applogger.Int("horizon", p.Horizon),
		applogger.String("trend", string(proj.Trend)),
		applogger.String("source_currency", res.SourceCurrency),
		applogger.String("currency", res.DisplayCurrency),
	)
	return res, nil
}

func (uc *DashboardUseCase) convert(ctx context.Context, res *DashboardResult, prices []float64) {
	converted, err := uc.converter.ConvertAll(ctx, prices)
	if err != nil {
		uc.l.Warn("dashboard rate fallback", applogger.String("ticker", res.Ticker), applogger.Error(err))
		if uc.metrics != nil {
			uc.metrics.RecordError("rate_unavailable")
		}
		res.Warnings = append(res.Warnings, RateWarning)
		return
	}
	for i := range res.Predictions {
		v := converted[i]
		res.Predictions[i].PriceINR = &v
	}
	res.DisplayCurrency = uc.converter.Target()
}
