package repository

import (
	"context"
	"errors"
	"time"

	"FinAdvisor/internal/domain/models"
	domrepo "FinAdvisor/internal/domain/repository"
	"FinAdvisor/pkg/cache"
	applogger "FinAdvisor/pkg/logger"
	"FinAdvisor/pkg/util"
)

// CachedPriceProvider memoizes series by (ticker, start, end).
// Only successful fetches are stored.
type CachedPriceProvider struct {
	next    domrepo.PriceProvider
	cache   cache.Service
	ttl     time.Duration
	source  string
	metrics domrepo.Metrics
	l       *applogger.Logger
}

func NewCachedPriceProvider(next domrepo.PriceProvider, c cache.Service, ttl time.Duration) *CachedPriceProvider {
	return &CachedPriceProvider{next: next, cache: c, ttl: ttl, source: "yahoo", l: applogger.Nop()}
}

// SetLogger injects a structured logger.
func (p *CachedPriceProvider) SetLogger(l *applogger.Logger) {
	if l != nil {
		p.l = l
	}
}

// SetMetrics injects the metrics sink for fetch and cache lookups.
func (p *CachedPriceProvider) SetMetrics(m domrepo.Metrics) { p.metrics = m }

var _ domrepo.PriceProvider = (*CachedPriceProvider)(nil)

func (p *CachedPriceProvider) FetchSeries(ctx context.Context, ticker string, start, end time.Time) (models.PriceSeries, error) {
	start, end = util.Day(start), util.Day(end)
	key := cache.GenerateKeyWithParams("series", ticker, start, end)

	var cached models.PriceSeries
	err := p.cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		p.recordLookup(true)
		p.l.Debug("series cache_hit", applogger.String("key", key))
		return cached, nil
	case errors.Is(err, cache.ErrCacheMiss):
		p.recordLookup(false)
	default:
		// a broken cache must not break the dashboard
		p.recordLookup(false)
		p.l.Warn("series cache_get_error", applogger.String("key", key), applogger.Error(err))
	}

	began := time.Now()
	s, err := p.next.FetchSeries(ctx, ticker, start, end)
	if p.metrics != nil {
		p.metrics.RecordLatency("fetch_series", time.Since(began).Seconds())
	}
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordError("fetch_series")
		}
		return models.PriceSeries{}, err
	}
	if p.metrics != nil {
		p.metrics.RecordFetch(p.source, ticker)
	}

	if err := p.cache.Set(ctx, key, s, p.ttl); err != nil {
		p.l.Warn("series cache_set_error", applogger.String("key", key), applogger.Error(err))
	}
	return s, nil
}

func (p *CachedPriceProvider) recordLookup(hit bool) {
	if p.metrics != nil {
		p.metrics.RecordCacheLookup(hit)
	}
}
