package analytics

import "strings"

// Classifier matches tickers against a fixed allow-list. Matching is exact
// after trimming whitespace: suffixes such as .NS are not inspected.
type Classifier struct {
	tickers map[string]struct{}
}

func NewClassifier(tickers []string) *Classifier {
	m := make(map[string]struct{}, len(tickers))
	for _, t := range tickers {
		t = strings.TrimSpace(t)
		if t != "" {
			m[t] = struct{}{}
		}
	}
	return &Classifier{tickers: m}
}

func (c *Classifier) IsIndian(ticker string) bool {
	_, ok := c.tickers[strings.TrimSpace(ticker)]
	return ok
}
