package web

import (
	"io"
	"strconv"

	"FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/usecase"
	"FinAdvisor/pkg/util"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderCharts writes a page with the closing-price chart and the
// closing-price plus moving-average chart.
func RenderCharts(w io.Writer, res *usecase.DashboardResult) error {
	dates := make([]string, len(res.Closes))
	for i, p := range res.Closes {
		dates[i] = p.Date.Format(util.DateLayout)
	}
	closes := lineData(res.Closes)

	// align the moving average with the close dates; leading days have no value
	ma := make([]opts.LineData, len(res.Closes))
	offset := len(res.Closes) - len(res.MovingAverage)
	for i := range ma {
		if i < offset {
			ma[i] = opts.LineData{Value: "-"}
			continue
		}
		ma[i] = opts.LineData{Value: res.MovingAverage[i-offset].Value}
	}

	price := newLine("Closing Price of "+res.Ticker, dates)
	price.AddSeries("Close", closes)

	overlay := newLine("Moving Average ("+strconv.Itoa(res.Window)+" days)", dates)
	overlay.AddSeries("Close", closes).
		AddSeries("MA", ma)

	page := components.NewPage()
	page.PageTitle = res.Ticker + " charts"
	page.AddCharts(price, overlay)
	return page.Render(w)
}

func newLine(title string, dates []string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(dates)
	return line
}

func lineData(points []models.Point) []opts.LineData {
	out := make([]opts.LineData, len(points))
	for i, p := range points {
		out[i] = opts.LineData{Value: p.Value}
	}
	return out
}
