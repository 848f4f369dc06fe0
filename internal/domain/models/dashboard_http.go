package models

// Requests for dashboard HTTP endpoints. Dates are YYYY-MM-DD; an empty end means today.

type DashboardRequest struct {
	Ticker  string `query:"ticker" json:"ticker" default:"AAPL" validate:"required,max=32"`
	Start   string `query:"start" json:"start" default:"2020-01-01" validate:"required,datetime=2006-01-02"`
	End     string `query:"end" json:"end" validate:"omitempty,datetime=2006-01-02"`
	Window  int    `query:"window" json:"window" default:"50" validate:"gte=5,lte=200"`
	Horizon int    `query:"horizon" json:"horizon" default:"7" validate:"gte=1,lte=7"`
}

type SeriesRequest struct {
	Ticker string `query:"ticker" json:"ticker" validate:"required,max=32"`
	Start  string `query:"start" json:"start" default:"2020-01-01" validate:"required,datetime=2006-01-02"`
	End    string `query:"end" json:"end" validate:"omitempty,datetime=2006-01-02"`
}
