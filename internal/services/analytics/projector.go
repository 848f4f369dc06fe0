package analytics

import (
	"fmt"

	"FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/services/features"
)

// MATrendProjector extrapolates the moving average along its latest direction.
//
// With closes c[0..n-1] and moving average MA over the window W, the trend is
// upward iff MA[n-1] > MA[n-2]. The step is c[n-1]-c[n-W], fixed for the whole
// horizon, and price i (1-based) is MA[n-1] + i*step when upward and
// MA[n-1] - i*step otherwise.
type MATrendProjector struct{}

func NewMATrendProjector() *MATrendProjector { return &MATrendProjector{} }

func (p *MATrendProjector) Project(closes []float64, window, horizon int) (models.Projection, error) {
	if window < 1 {
		return models.Projection{}, fmt.Errorf("window must be >= 1, got %d", window)
	}
	if horizon < 1 {
		return models.Projection{}, fmt.Errorf("horizon must be >= 1, got %d", horizon)
	}
	// two defined MA values are needed to read a direction
	if len(closes) < window+1 {
		return models.Projection{}, fmt.Errorf("%w: need %d closes for window %d, have %d",
			models.ErrInsufficientHistory, window+1, window, len(closes))
	}

	ma, err := features.MovingAverage(closes, window)
	if err != nil {
		return models.Projection{}, err
	}
	last, prev := ma[len(ma)-1], ma[len(ma)-2]

	n := len(closes)
	delta := closes[n-1] - closes[n-window]

	trend := models.TrendDownward
	step := -delta
	if last > prev {
		trend = models.TrendUpward
		step = delta
	}

	prices := make([]float64, horizon)
	for i := range prices {
		prices[i] = last + float64(i+1)*step
	}

	return models.Projection{
		Trend:  trend,
		LastMA: last,
		Step:   step,
		Prices: prices,
	}, nil
}

// TrendSentence renders the user-facing trend description.
func TrendSentence(t models.Trend) string {
	return fmt.Sprintf("The stock is in an %s trend based on the moving average.", t)
}
