package services

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/yeremiapane/cafe-pos/models"
)

// DailyRevenueChart renders the per-day revenue of an order slice as a PNG
// bar chart, days in chronological order.
func DailyRevenueChart(orders []models.Order) ([]byte, error) {
	daily := DailyRevenue(orders)
	if len(daily) == 0 {
		return nil, &ValidationError{Reason: "no orders to chart"}
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	bars := make([]chart.Value, 0, len(dates))
	maxRevenue := 0.0
	for _, d := range dates {
		label := d
		if t, err := time.Parse("2006-01-02", d); err == nil {
			label = t.Format("Jan 02")
		}
		bars = append(bars, chart.Value{Label: label, Value: daily[d]})
		if daily[d] > maxRevenue {
			maxRevenue = daily[d]
		}
	}
	if maxRevenue == 0 {
		maxRevenue = 1
	}

	// An explicit y range keeps the renderer happy when every bar shares
	// one value, which is the normal case for a single-day chart.
	graph := chart.BarChart{
		Title:    "Daily Revenue",
		Height:   400,
		BarWidth: 40,
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxRevenue * 1.1},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render revenue chart: %w", err)
	}
	return buf.Bytes(), nil
}
