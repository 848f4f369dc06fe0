package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"FinAdvisor/internal/domain/models"
	drepo "FinAdvisor/internal/domain/repository"
	xhttp "FinAdvisor/pkg/http"
	applogger "FinAdvisor/pkg/logger"
	"FinAdvisor/pkg/util"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches daily bars from the Yahoo Finance chart API.
type Client struct {
	baseURL string
	http    *xhttp.Client
	log     *applogger.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithHTTPClient(h *xhttp.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithLogger(l *applogger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Yahoo chart client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    xhttp.NewClient(xhttp.WithTimeout(15*time.Second), xhttp.WithHeader("User-Agent", "Mozilla/5.0")),
		log:     applogger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ drepo.PriceProvider = (*Client)(nil)

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency  string `json:"currency"`
				Symbol    string `json:"symbol"`
				GMTOffset int64  `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchSeries returns daily bars for ticker with dates in [start, end], ascending.
// Every failure, including an empty result, wraps models.ErrDataUnavailable.
func (c *Client) FetchSeries(ctx context.Context, ticker string, start, end time.Time) (models.PriceSeries, error) {
	start, end = util.Day(start), util.Day(end)
	if end.Before(start) {
		return models.PriceSeries{}, fmt.Errorf("%w: %s after %s", models.ErrInvalidRange,
			start.Format(util.DateLayout), end.Format(util.DateLayout))
	}

	var resp chartResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v8/finance/chart/" + url.PathEscape(ticker),
		QueryParams: map[string][]string{
			"period1":  {strconv.FormatInt(start.Unix(), 10)},
			"period2":  {strconv.FormatInt(end.AddDate(0, 0, 1).Unix(), 10)},
			"interval": {"1d"},
		},
	}, &resp)
	if err != nil {
		c.log.Warn("yahoo: fetch failed", applogger.String("ticker", ticker), applogger.Error(err))
		return models.PriceSeries{}, fmt.Errorf("%w: yahoo %s: %w", models.ErrDataUnavailable, ticker, err)
	}
	if resp.Chart.Error != nil {
		return models.PriceSeries{}, fmt.Errorf("%w: yahoo %s: %s", models.ErrDataUnavailable, ticker, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return models.PriceSeries{}, fmt.Errorf("%w: yahoo %s: no data returned", models.ErrDataUnavailable, ticker)
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	offset := time.Duration(result.Meta.GMTOffset) * time.Second

	bars := make([]models.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		cl := at(quote.Close, i)
		if cl == nil {
			continue // holidays and halted sessions come back as nulls
		}
		day := util.Day(time.Unix(ts, 0).UTC().Add(offset))
		if day.Before(start) || day.After(end) {
			continue
		}
		bars = append(bars, models.PriceBar{
			Date:   day,
			Open:   value(at(quote.Open, i), *cl),
			High:   value(at(quote.High, i), *cl),
			Low:    value(at(quote.Low, i), *cl),
			Close:  *cl,
			Volume: value(at(quote.Volume, i), 0),
		})
	}
	if len(bars) == 0 {
		return models.PriceSeries{}, fmt.Errorf("%w: yahoo %s: no bars between %s and %s", models.ErrDataUnavailable,
			ticker, start.Format(util.DateLayout), end.Format(util.DateLayout))
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	c.log.Debug("yahoo: fetched series",
		applogger.String("ticker", ticker),
		applogger.Int("bars", len(bars)),
		applogger.Date("start", start),
		applogger.Date("end", end),
	)

	return models.PriceSeries{
		Ticker:   ticker,
		Currency: result.Meta.Currency,
		Start:    start,
		End:      end,
		Bars:     bars,
	}, nil
}

func at(xs []*float64, i int) *float64 {
	if i < len(xs) {
		return xs[i]
	}
	return nil
}

func value(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
