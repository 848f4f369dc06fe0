package api

import (
	"time"

	models "FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/service/metrics"
	"FinAdvisor/internal/service/ratelimit"
	"FinAdvisor/internal/usecase"
	xhttp "FinAdvisor/pkg/http"
	xlogger "FinAdvisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardEchoHandler serves the JSON dashboard and series endpoints.
type DashboardEchoHandler struct {
	logger    *xlogger.Logger
	dashboard *usecase.DashboardUseCase
	series    *usecase.SeriesUseCase
	rl        *ratelimit.Limiter
}

func NewDashboardEchoHandler(logger *xlogger.Logger, dashboard *usecase.DashboardUseCase, series *usecase.SeriesUseCase, rl *ratelimit.Limiter) *DashboardEchoHandler {
	metrics.Register()
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &DashboardEchoHandler{logger: logger, dashboard: dashboard, series: series, rl: rl}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/series", h.Series)
}

func (h *DashboardEchoHandler) Dashboard(c echo.Context) error {
	const endpoint = "dashboard"
	start := time.Now()
	defer func() { metrics.DashboardLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if !h.rl.Allow(c.RealIP() + ":" + endpoint) {
		h.logger.Warn("dashboard rate_limited", xlogger.String("remote", c.RealIP()))
		return h.fail(c, endpoint, xhttp.TooManyRequestsError("Too many requests"))
	}

	req := &models.DashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		metrics.DashboardErrors.WithLabelValues(endpoint, "ERR_VALIDATION").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.dashboard.Build(c.Request().Context(), usecase.DashboardParams{
		Ticker:  req.Ticker,
		Start:   xhttp.ParseDateDefault(req.Start, time.Time{}),
		End:     xhttp.ParseDateDefault(req.End, time.Time{}),
		Window:  req.Window,
		Horizon: req.Horizon,
	})
	if err != nil {
		h.logger.Error("dashboard usecase error", xlogger.String("ticker", req.Ticker), xlogger.Error(err))
		return h.fail(c, endpoint, err)
	}
	if len(res.Warnings) > 0 {
		metrics.RateWarnings.Inc()
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) Series(c echo.Context) error {
	const endpoint = "series"
	start := time.Now()
	defer func() { metrics.DashboardLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if !h.rl.Allow(c.RealIP() + ":" + endpoint) {
		h.logger.Warn("series rate_limited", xlogger.String("remote", c.RealIP()))
		return h.fail(c, endpoint, xhttp.TooManyRequestsError("Too many requests"))
	}

	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		metrics.DashboardErrors.WithLabelValues(endpoint, "ERR_VALIDATION").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.series.GetSeries(c.Request().Context(), usecase.GetSeriesParams{
		Ticker: req.Ticker,
		Start:  xhttp.ParseDateDefault(req.Start, time.Time{}),
		End:    xhttp.ParseDateDefault(req.End, time.Time{}),
	})
	if err != nil {
		h.logger.Error("series usecase error", xlogger.String("ticker", req.Ticker), xlogger.Error(err))
		return h.fail(c, endpoint, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) fail(c echo.Context, endpoint string, err error) error {
	appErr := toAppError(err)
	metrics.DashboardErrors.WithLabelValues(endpoint, appErr.Code).Inc()
	return xhttp.AppErrorResponse(c, appErr)
}
