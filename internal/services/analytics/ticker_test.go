package analytics

import "testing"

func TestClassifier(t *testing.T) {
	c := NewClassifier([]string{"RELIANCE.NS", "TCS.NS", " INFY.NS "})
	cases := map[string]bool{
		"RELIANCE.NS": true,
		"INFY.NS":     true,
		" TCS.NS":     true,
		"AAPL":        false,
		"TCS.BO":      false,
		"reliance.ns": false,
		"":            false,
	}
	for ticker, want := range cases {
		if got := c.IsIndian(ticker); got != want {
			t.Errorf("IsIndian(%q)=%v want %v", ticker, got, want)
		}
	}
}
