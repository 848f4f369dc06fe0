package features

import (
	"fmt"

	"FinAdvisor/internal/domain/models"

	"github.com/markcheno/go-talib"
)

// MovingAverage computes the trailing simple moving average of closes over window.
// The result holds only defined values: out[i] is the mean of closes[i : i+window],
// so it has len(closes)-window+1 entries and aligns with closes[window-1:].
func MovingAverage(closes []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("moving average window must be >= 1, got %d", window)
	}
	if len(closes) < window {
		return nil, fmt.Errorf("%w: %d closes for a %d-day window", models.ErrInsufficientHistory, len(closes), window)
	}
	sma := talib.Sma(closes, window)
	out := make([]float64, len(closes)-window+1)
	copy(out, sma[window-1:])
	return out, nil
}

// MovingAveragePoints dates the moving average against the series bars.
// Leading dates without a full window are absent.
func MovingAveragePoints(series models.PriceSeries, window int) ([]models.Point, error) {
	ma, err := MovingAverage(series.Closes(), window)
	if err != nil {
		return nil, err
	}
	out := make([]models.Point, len(ma))
	for i, v := range ma {
		out[i] = models.Point{Date: series.Bars[i+window-1].Date, Value: v}
	}
	return out, nil
}

// ClosePoints returns the dated close series.
func ClosePoints(series models.PriceSeries) []models.Point {
	out := make([]models.Point, len(series.Bars))
	for i, b := range series.Bars {
		out[i] = models.Point{Date: b.Date, Value: b.Close}
	}
	return out
}

// Tail returns the last n bars (all of them if fewer).
func Tail(bars []models.PriceBar, n int) []models.PriceBar {
	if n <= 0 {
		return nil
	}
	if len(bars) <= n {
		return bars
	}
	return bars[len(bars)-n:]
}
