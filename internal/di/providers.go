package di

import (
	"fmt"

	"FinAdvisor/internal/domain/repository"
	domservice "FinAdvisor/internal/domain/service"
	"FinAdvisor/internal/handler/api"
	"FinAdvisor/internal/handler/web"
	internalrepo "FinAdvisor/internal/repository"
	"FinAdvisor/internal/service/fxrate"
	"FinAdvisor/internal/service/ratelimit"
	"FinAdvisor/internal/service/yahoo"
	"FinAdvisor/internal/services/analytics"
	"FinAdvisor/internal/usecase"
	"FinAdvisor/pkg/cache"
	"FinAdvisor/pkg/config"
	xhttp "FinAdvisor/pkg/http"
	applogger "FinAdvisor/pkg/logger"
	"FinAdvisor/pkg/metrics"
	"FinAdvisor/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the series cache: bounded in-memory LRU, optionally backed by Redis.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "layered":
		rc, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		l.Info("cache: layered",
			applogger.String("redis", fmt.Sprintf("%s:%d", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port)),
			applogger.Int("max_entries", cfg.Cache.MaxEntries),
			applogger.Duration("redis_ttl_ms", cfg.Cache.Redis.TTL),
		)
		return cache.NewLayeredCache(rc,
			cache.WithLayeredMemorySize(cfg.Cache.MaxEntries),
			cache.WithLayeredRedisTTL(cfg.Cache.Redis.TTL),
		), nil
	default:
		l.Info("cache: memory", applogger.Int("max_entries", cfg.Cache.MaxEntries))
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MaxEntries)), nil
	}
}

// ProvideYahooClient creates the market-data client with outbound pacing.
func ProvideYahooClient(cfg *config.Config, l *applogger.Logger) *yahoo.Client {
	h := xhttp.NewClient(
		xhttp.WithTimeout(cfg.Market.Timeout),
		xhttp.WithHeader("User-Agent", cfg.Market.UserAgent),
		xhttp.WithRateLimit(float64(cfg.Market.RequestsPerSec), 1),
	)
	return yahoo.New(
		yahoo.WithBaseURL(cfg.Market.BaseURL),
		yahoo.WithHTTPClient(h),
		yahoo.WithLogger(l),
	)
}

// ProvidePriceProvider wraps the market-data client with the series cache.
func ProvidePriceProvider(client *yahoo.Client, c cache.Service, m repository.Metrics, cfg *config.Config, l *applogger.Logger) repository.PriceProvider {
	p := internalrepo.NewCachedPriceProvider(client, c, cfg.Cache.TTL)
	p.SetLogger(l)
	p.SetMetrics(m)
	return p
}

// ProvideRateProvider creates the exchange-rate client.
func ProvideRateProvider(cfg *config.Config, l *applogger.Logger) repository.RateProvider {
	return fxrate.New(cfg.FX.BaseURL, cfg.FX.Timeout, l)
}

func ProvideProjector() domservice.Projector {
	return analytics.NewMATrendProjector()
}

func ProvideConverter(rates repository.RateProvider, cfg *config.Config) domservice.CurrencyConverter {
	return analytics.NewConverter(rates, cfg.FX.From, cfg.FX.To)
}

func ProvideClassifier(cfg *config.Config, l *applogger.Logger) domservice.TickerClassifier {
	l.Info("classifier: indian tickers", applogger.Strings("indian_tickers", cfg.Dashboard.IndianTickers))
	return analytics.NewClassifier(cfg.Dashboard.IndianTickers)
}

// ProvideDashboardUseCase creates the dashboard use case.
func ProvideDashboardUseCase(
	prices repository.PriceProvider,
	projector domservice.Projector,
	converter domservice.CurrencyConverter,
	classifier domservice.TickerClassifier,
	m repository.Metrics,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.DashboardUseCase {
	uc := usecase.NewDashboardUseCase(prices, projector, converter, classifier, cfg.Dashboard.TailRows)
	uc.SetLogger(l)
	uc.SetMetrics(m)
	return uc
}

func ProvideSeriesUseCase(prices repository.PriceProvider) *usecase.SeriesUseCase {
	return usecase.NewSeriesUseCase(prices)
}

func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.PerSec, cfg.RateLimit.Burst)
}

func ProvideAPIHandler(l *applogger.Logger, dash *usecase.DashboardUseCase, series *usecase.SeriesUseCase, rl *ratelimit.Limiter) *api.DashboardEchoHandler {
	return api.NewDashboardEchoHandler(l, dash, series, rl)
}

func ProvidePageHandler(l *applogger.Logger, dash *usecase.DashboardUseCase) *web.PageHandler {
	return web.NewPageHandler(l, dash)
}

// ProvideHTTPHandler combines the page and API route sets.
func ProvideHTTPHandler(a *api.DashboardEchoHandler, p *web.PageHandler) xhttp.Handler {
	return xhttp.Handlers{p, a}
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, l, h, c)
}
