package fxrate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"
	xhttp "FinAdvisor/pkg/http"
	applogger "FinAdvisor/pkg/logger"
)

const DefaultBaseURL = "https://api.frankfurter.app"

// Client reads spot rates from a Frankfurter-compatible /latest endpoint.
type Client struct {
	baseURL string
	http    *xhttp.Client
	log     *applogger.Logger
}

func New(baseURL string, timeout time.Duration, log *applogger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = applogger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		log:     log,
	}
}

var _ drepo.RateProvider = (*Client)(nil)

type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Rate returns how many `to` units one `from` unit buys.
func (c *Client) Rate(ctx context.Context, from, to string) (float64, error) {
	var resp latestResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/latest",
		QueryParams: map[string][]string{
			"from": {from},
			"to":   {to},
		},
	}, &resp)
	if err != nil {
		c.log.Warn("fxrate: request failed", applogger.String("pair", from+to), applogger.Error(err))
		return 0, fmt.Errorf("%w: %s/%s: %w", models.ErrRateUnavailable, from, to, err)
	}

	rate, ok := resp.Rates[to]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %s/%s missing from response", models.ErrRateUnavailable, from, to)
	}

	c.log.Debug("fxrate: rate fetched",
		applogger.String("pair", from+to),
		applogger.Float64("rate", rate),
		applogger.String("as_of", resp.Date),
	)
	return rate, nil
}
