package models

import "time"

// PriceBar is one daily OHLCV observation.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is the history for one (ticker, start, end) request.
// Bars are in ascending date order.
type PriceSeries struct {
	Ticker   string     `json:"ticker"`
	Currency string     `json:"currency,omitempty"`
	Start    time.Time  `json:"start"`
	End      time.Time  `json:"end"`
	Bars     []PriceBar `json:"bars"`
}

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// LastDate returns the date of the most recent bar, or the zero time.
func (s PriceSeries) LastDate() time.Time {
	if len(s.Bars) == 0 {
		return time.Time{}
	}
	return s.Bars[len(s.Bars)-1].Date
}

// Point is a dated value of a derived series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
