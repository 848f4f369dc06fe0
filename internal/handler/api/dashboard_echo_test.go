package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/service/ratelimit"
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
		bars[i] = models.PriceBar{Date: start.AddDate(0, 0, i), Close: float64(100 + i)}
	}
	return models.PriceSeries{Ticker: ticker, Start: start, End: end, Bars: bars}, nil
}

type stubRates struct{}

func (stubRates) Rate(context.Context, string, string) (float64, error) { return 80, nil }

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(prices *stubPrices, rl *ratelimit.Limiter) *echo.Echo {
	dash := usecase.NewDashboardUseCase(
		prices,
		analytics.NewMATrendProjector(),
		analytics.NewConverter(stubRates{}, "USD", "INR"),
		analytics.NewClassifier([]string{"RELIANCE.NS"}),
		5,
	)
	h := NewDashboardEchoHandler(nil, dash, usecase.NewSeriesUseCase(prices), rl)
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func get(e *echo.Echo, target string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestDashboardEndpoint(t *testing.T) {
	e := newTestServer(&stubPrices{n: 120}, ratelimit.New(0, 1))

	rec, env := get(e, "/api/dashboard?ticker=RELIANCE.NS&start=2024-01-01&end=2024-06-01&window=10&horizon=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var res usecase.DashboardResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Ticker != "RELIANCE.NS" || res.Window != 10 || len(res.Predictions) != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Trend != models.TrendUpward || res.DisplayCurrency != "INR" {
		t.Fatalf("unexpected trend/currency %s %s", res.Trend, res.DisplayCurrency)
	}
	if res.Predictions[0].PriceINR == nil {
		t.Fatalf("expected converted price")
	}
}

func TestDashboardEndpointDefaults(t *testing.T) {
	e := newTestServer(&stubPrices{n: 200}, ratelimit.New(0, 1))

	rec, env := get(e, "/api/dashboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var res usecase.DashboardResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Ticker != "AAPL" || res.Window != 50 || res.Horizon != 7 {
		t.Fatalf("defaults not applied: %+v", res)
	}
	if res.DisplayCurrency != "USD" {
		t.Fatalf("AAPL must stay in USD")
	}
}

func TestDashboardEndpointErrors(t *testing.T) {
	cases := []struct {
		name   string
		prices *stubPrices
		target string
		status int
		code   string
	}{
		{"window out of bounds", &stubPrices{n: 100}, "/api/dashboard?window=500", http.StatusBadRequest, "ERR_LTE"},
		{"horizon out of bounds", &stubPrices{n: 100}, "/api/dashboard?horizon=8", http.StatusBadRequest, "ERR_LTE"},
		{"explicit zero window", &stubPrices{n: 100}, "/api/dashboard?window=0", http.StatusBadRequest, "ERR_GTE"},
		{"explicit zero horizon", &stubPrices{n: 100}, "/api/dashboard?horizon=0", http.StatusBadRequest, "ERR_GTE"},
		{"bad date", &stubPrices{n: 100}, "/api/dashboard?start=01/02/2020", http.StatusBadRequest, "ERR_DATETIME"},
		{"start after end", &stubPrices{n: 100}, "/api/dashboard?start=2024-02-01&end=2024-01-01", http.StatusBadRequest, "ERR_INVALID_RANGE"},
		{"short history", &stubPrices{n: 20}, "/api/dashboard?window=50", http.StatusUnprocessableEntity, "ERR_INSUFFICIENT_HISTORY"},
		{"unknown ticker", &stubPrices{err: models.ErrDataUnavailable}, "/api/dashboard?ticker=ZZZZ", http.StatusBadGateway, "ERR_DATA_UNAVAILABLE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := get(newTestServer(tc.prices, ratelimit.New(0, 1)), tc.target)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			var errs []struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(env.Data, &errs); err != nil || len(errs) == 0 {
				t.Fatalf("expected error list, got %s", env.Data)
			}
			if errs[0].Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, errs[0].Code)
			}
		})
	}
}

func TestSeriesEndpoint(t *testing.T) {
	e := newTestServer(&stubPrices{n: 4}, ratelimit.New(0, 1))

	rec, env := get(e, "/api/series?ticker=MSFT&start=2024-01-01&end=2024-01-10")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var res usecase.GetSeriesResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Ticker != "MSFT" || res.Count != 4 {
		t.Fatalf("unexpected result %+v", res)
	}

	rec, _ = get(e, "/api/series")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing ticker should be rejected, got %d", rec.Code)
	}
}

func TestRateLimited(t *testing.T) {
	e := newTestServer(&stubPrices{n: 100}, ratelimit.New(0.001, 1))

	if rec, _ := get(e, "/api/dashboard?window=10"); rec.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", rec.Code)
	}
	rec, _ := get(e, "/api/dashboard?window=10")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
