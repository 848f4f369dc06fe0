package analytics

import (
	"errors"
	"math"
	"testing"

	"FinAdvisor/internal/domain/models"
)

func linear(from float64, n int, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}

func TestProjectUpwardTrend(t *testing.T) {
	closes := linear(1, 60, 1) // 1..60
	p, err := NewMATrendProjector().Project(closes, 5, 7)
	if err != nil {
		t.Fatal(err)
	}
	if p.Trend != models.TrendUpward {
		t.Fatalf("expected upward, got %s", p.Trend)
	}
	if p.LastMA != 58 {
		t.Fatalf("unexpected last MA %v", p.LastMA)
	}
	// closes[59]-closes[55] = 60-56
	if p.Step != 4 {
		t.Fatalf("unexpected step %v", p.Step)
	}
	if len(p.Prices) != 7 {
		t.Fatalf("expected 7 prices, got %d", len(p.Prices))
	}
	for i, got := range p.Prices {
		want := 58 + float64(i+1)*4
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("price[%d]=%v want %v", i, got, want)
		}
	}
}

func TestProjectDownwardTrendSubtractsDelta(t *testing.T) {
	closes := linear(60, 60, -1) // 60..1
	p, err := NewMATrendProjector().Project(closes, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Trend != models.TrendDownward {
		t.Fatalf("expected downward, got %s", p.Trend)
	}
	// delta = 1-5 = -4, subtracted each day
	want := []float64{7, 11, 15}
	for i := range want {
		if math.Abs(p.Prices[i]-want[i]) > 1e-9 {
			t.Fatalf("price[%d]=%v want %v", i, p.Prices[i], want[i])
		}
	}
}

func TestProjectArithmeticSequence(t *testing.T) {
	closes := []float64{10, 12, 11, 15, 14, 18, 21, 19, 25, 24, 30}
	p, err := NewMATrendProjector().Project(closes, 4, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(p.Prices); i++ {
		d := p.Prices[i] - p.Prices[i-1]
		if math.Abs(d-p.Step) > 1e-9 {
			t.Fatalf("difference %v at %d, expected constant step %v", d, i, p.Step)
		}
	}
	if math.Abs(p.Prices[0]-(p.LastMA+p.Step)) > 1e-9 {
		t.Fatalf("first price %v does not follow last MA %v", p.Prices[0], p.LastMA)
	}
}

func TestProjectFlatSeriesIsDownwardAndFlat(t *testing.T) {
	closes := make([]float64, 504)
	for i := range closes {
		closes[i] = 100
	}
	p, err := NewMATrendProjector().Project(closes, 50, 7)
	if err != nil {
		t.Fatal(err)
	}
	if p.Trend != models.TrendDownward {
		t.Fatalf("equal MAs should read as downward, got %s", p.Trend)
	}
	for i, v := range p.Prices {
		if math.Abs(v-100) > 1e-9 {
			t.Fatalf("price[%d]=%v want 100", i, v)
		}
	}
}

func TestProjectInsufficientHistory(t *testing.T) {
	proj := NewMATrendProjector()
	for _, n := range []int{0, 3, 50} {
		_, err := proj.Project(linear(1, n, 1), 50, 7)
		if !errors.Is(err, models.ErrInsufficientHistory) {
			t.Fatalf("n=%d: expected ErrInsufficientHistory, got %v", n, err)
		}
	}
	if _, err := proj.Project(linear(1, 51, 1), 50, 7); err != nil {
		t.Fatalf("window+1 closes should be enough: %v", err)
	}
}

func TestTrendSentence(t *testing.T) {
	want := "The stock is in an upward trend based on the moving average."
	if got := TrendSentence(models.TrendUpward); got != want {
		t.Fatalf("got %q", got)
	}
}
