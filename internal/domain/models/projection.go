package models

import "time"

// Trend is the direction of the two most recent moving-average values.
type Trend string

const (
	TrendUpward   Trend = "upward"
	TrendDownward Trend = "downward"
)

// Projection is the output of the moving-average trend projector.
type Projection struct {
	Trend  Trend
	LastMA float64
	// Step is the signed per-day increment applied to every predicted price.
	Step   float64
	Prices []float64
}

// Prediction is one projected day. PriceINR is set only when conversion succeeded.
type Prediction struct {
	Date     time.Time `json:"date"`
	Price    float64   `json:"price"`
	PriceINR *float64  `json:"price_inr,omitempty"`
}
