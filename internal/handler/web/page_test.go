package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/services/analytics"
	"FinAdvisor/internal/usecase"

	"github.com/labstack/echo/v4"
)

type stubPrices struct {
	n   int
	err error
}

func (s *stubPrices) FetchSeries(_ context.Context, ticker string, start, end time.Time) (models.PriceSeries, error) {
	if s.err != nil {
		return models.PriceSeries{}, s.err
	}
	bars := make([]models.PriceBar, s.n)
	for i := range bars {
		bars[i] = models.PriceBar{Date: start.AddDate(0, 0, i), Open: 1, High: 2, Low: 1, Close: 150, Volume: 1000}
	}
	return models.PriceSeries{Ticker: ticker, Start: start, End: end, Currency: "USD", Bars: bars}, nil
}

type failingRates struct{}

func (failingRates) Rate(context.Context, string, string) (float64, error) {
	return 0, models.ErrRateUnavailable
}

func newServer(prices *stubPrices) *echo.Echo {
	dash := usecase.NewDashboardUseCase(
		prices,
		analytics.NewMATrendProjector(),
		analytics.NewConverter(failingRates{}, "USD", "INR"),
		analytics.NewClassifier([]string{"INFY.NS"}),
		5,
	)
	e := echo.New()
	NewPageHandler(nil, dash).RegisterRoutes(e)
	return e
}

func render(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageRendersDashboard(t *testing.T) {
	rec := render(newServer(&stubPrices{n: 100}), "/?ticker=MSFT&start=2024-01-01&end=2024-05-01&window=20&horizon=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"MSFT Stock Data from 2024-01-01 to 2024-05-01",
		"Quoted by the provider in USD.",
		"Predicted Prices for Next 3 Days (USD)",
		"The stock is in an downward trend based on the moving average.",
		"/dashboard/charts?",
		"150.00",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestPageShowsRateWarning(t *testing.T) {
	rec := render(newServer(&stubPrices{n: 100}), "/?ticker=INFY.NS&start=2024-01-01&window=20&horizon=2")
	if !strings.Contains(rec.Body.String(), usecase.RateWarning) {
		t.Fatalf("expected rate warning in page")
	}
}

func TestPageShowsErrors(t *testing.T) {
	rec := render(newServer(&stubPrices{err: models.ErrDataUnavailable}), "/?ticker=ZZZZ")
	if rec.Code != http.StatusOK {
		t.Fatalf("page must render on failure, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error fetching data") {
		t.Fatalf("expected error banner")
	}

	rec = render(newServer(&stubPrices{n: 100}), "/?window=1")
	if !strings.Contains(rec.Body.String(), "window must be greater than or equal to 5") {
		t.Fatalf("expected validation banner, got %s", rec.Body.String())
	}
}

func TestChartsPage(t *testing.T) {
	rec := render(newServer(&stubPrices{n: 60}), "/dashboard/charts?ticker=MSFT&start=2024-01-01&window=10&horizon=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "echarts") || !strings.Contains(body, "Closing Price of MSFT") {
		t.Fatalf("charts page missing chart markup")
	}
}
