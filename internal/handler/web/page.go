package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/usecase"
	xhttp "FinAdvisor/pkg/http"
	xlogger "FinAdvisor/pkg/logger"
	"FinAdvisor/pkg/util"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"date":  func(t time.Time) string { return t.Format(util.DateLayout) },
	"price": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"deref": func(p *float64) float64 { return *p },
}).ParseFS(templatesFS, "templates/dashboard.html"))

// PageHandler renders the dashboard page and its charts.
type PageHandler struct {
	logger    *xlogger.Logger
	dashboard *usecase.DashboardUseCase
}

func NewPageHandler(logger *xlogger.Logger, dashboard *usecase.DashboardUseCase) *PageHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &PageHandler{logger: logger, dashboard: dashboard}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Page)
	e.GET("/dashboard/charts", h.Charts)
}

type pageData struct {
	Form      models.DashboardRequest
	Result    *usecase.DashboardResult
	Error     string
	Warnings  []string
	ChartsURL string
}

// Page always renders: failures become a banner above the form.
func (h *PageHandler) Page(c echo.Context) error {
	req := &models.DashboardRequest{}
	data := pageData{}

	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		data.Error = validationMessage(verr)
	} else {
		res, err := h.build(c, req)
		if err != nil {
			h.logger.Error("dashboard page error", xlogger.String("ticker", req.Ticker), xlogger.Error(err))
			data.Error = errorMessage(err)
		} else {
			data.Result = res
			data.Warnings = res.Warnings
			data.ChartsURL = "/dashboard/charts?" + formQuery(req).Encode()
		}
	}
	if req.End == "" {
		req.End = time.Now().Format(util.DateLayout)
	}
	data.Form = *req

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		h.logger.Error("dashboard template error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Charts renders the close and moving-average line charts as a standalone page.
func (h *PageHandler) Charts(c echo.Context) error {
	req := &models.DashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return c.HTML(http.StatusBadRequest, template.HTMLEscapeString(validationMessage(verr)))
	}
	res, err := h.build(c, req)
	if err != nil {
		h.logger.Error("dashboard charts error", xlogger.String("ticker", req.Ticker), xlogger.Error(err))
		return c.HTML(http.StatusOK, "<p>"+template.HTMLEscapeString(errorMessage(err))+"</p>")
	}

	var buf bytes.Buffer
	if err := RenderCharts(&buf, res); err != nil {
		h.logger.Error("dashboard charts render error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *PageHandler) build(c echo.Context, req *models.DashboardRequest) (*usecase.DashboardResult, error) {
	return h.dashboard.Build(c.Request().Context(), usecase.DashboardParams{
		Ticker:  req.Ticker,
		Start:   xhttp.ParseDateDefault(req.Start, time.Time{}),
		End:     xhttp.ParseDateDefault(req.End, time.Time{}),
		Window:  req.Window,
		Horizon: req.Horizon,
	})
}

func formQuery(req *models.DashboardRequest) url.Values {
	q := url.Values{}
	q.Set("ticker", req.Ticker)
	q.Set("start", req.Start)
	if req.End != "" {
		q.Set("end", req.End)
	}
	q.Set("window", strconv.Itoa(req.Window))
	q.Set("horizon", strconv.Itoa(req.Horizon))
	return q
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidRange):
		return "Start date must be on or before end date."
	case errors.Is(err, models.ErrInsufficientHistory):
		return "Not enough price history for the selected moving-average window. Pick an earlier start date or a smaller window."
	case errors.Is(err, models.ErrDataUnavailable):
		return "Error fetching data. Please check the ticker symbol and date range."
	default:
		return "Something went wrong. Please try again."
	}
}

func validationMessage(verr interface{}) string {
	if errs, ok := verr.([]xhttp.ValidationError); ok && len(errs) > 0 {
		return errs[0].Message
	}
	return "Invalid input."
}
