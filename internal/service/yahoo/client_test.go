package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"FinAdvisor/internal/domain/models"
)

const chartBody = `{"chart":{"result":[{
  "meta":{"currency":"USD","symbol":"AAPL","gmtoffset":-14400},
  "timestamp":[1704378600,1704205800,1704292200,1704465000],
  "indicators":{"quote":[{
    "open":[183.0,187.1,184.2,null],
    "high":[183.5,188.4,185.9,null],
    "low":[180.9,183.9,183.4,null],
    "close":[181.2,185.6,184.3,null],
    "volume":[62303300,82488700,58414500,null]
  }]}
}],"error":null}}`

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFetchSeries(t *testing.T) {
	var gotPath, gotInterval, gotP1, gotP2 string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotInterval = r.URL.Query().Get("interval")
		gotP1 = r.URL.Query().Get("period1")
		gotP2 = r.URL.Query().Get("period2")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	s, err := c.FetchSeries(context.Background(), "AAPL", day(2024, 1, 1), day(2024, 1, 10))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotPath != "/v8/finance/chart/AAPL" || gotInterval != "1d" {
		t.Fatalf("unexpected request %s interval=%s", gotPath, gotInterval)
	}
	if gotP1 != "1704067200" || gotP2 != "1704931200" {
		t.Fatalf("unexpected period %s..%s", gotP1, gotP2)
	}
	if s.Currency != "USD" || s.Ticker != "AAPL" {
		t.Fatalf("unexpected meta %+v", s)
	}
	if len(s.Bars) != 3 {
		t.Fatalf("expected 3 bars after dropping nulls, got %d", len(s.Bars))
	}
	want := []time.Time{day(2024, 1, 2), day(2024, 1, 3), day(2024, 1, 4)}
	for i, b := range s.Bars {
		if !b.Date.Equal(want[i]) {
			t.Fatalf("bar %d dated %s, want %s", i, b.Date, want[i])
		}
	}
	if s.Bars[0].Close != 185.6 || s.Bars[2].Close != 181.2 {
		t.Fatalf("bars not sorted by date: %+v", s.Bars)
	}
}

func TestFetchSeriesDropsBarsOutsideRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	s, err := New(WithBaseURL(srv.URL)).FetchSeries(context.Background(), "AAPL", day(2024, 1, 3), day(2024, 1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Bars) != 1 || !s.Bars[0].Date.Equal(day(2024, 1, 3)) {
		t.Fatalf("unexpected bars %+v", s.Bars)
	}
}

func TestFetchSeriesUnavailable(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		},
		"api error": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
		},
		"empty": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{},"timestamp":[],"indicators":{"quote":[{}]}}],"error":null}}`))
		},
		"malformed": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"chart":`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()
			_, err := New(WithBaseURL(srv.URL)).FetchSeries(context.Background(), "ZZZZ", day(2024, 1, 1), day(2024, 1, 10))
			if !errors.Is(err, models.ErrDataUnavailable) {
				t.Fatalf("expected ErrDataUnavailable, got %v", err)
			}
		})
	}
}

func TestFetchSeriesInvalidRange(t *testing.T) {
	_, err := New().FetchSeries(context.Background(), "AAPL", day(2024, 2, 1), day(2024, 1, 1))
	if !errors.Is(err, models.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
