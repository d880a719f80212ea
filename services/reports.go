package services

import (
	"sort"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

// Reporting is pure aggregation over an order slice. Nothing here mutates
// state or touches the store; callers pass the snapshot they care about.

// ItemCount is one row of a top-items ranking.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrdersInRange filters orders whose date falls within [start, end],
// bounds inclusive. Dates are YYYY-MM-DD strings, so lexicographic
// comparison is chronological.
func OrdersInRange(orders []models.Order, start, end string) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if o.Date >= start && o.Date <= end {
			out = append(out, o)
		}
	}
	return out
}

// RevenueInRange sums order totals over an inclusive date range.
func RevenueInRange(orders []models.Order, start, end string) float64 {
	var total float64
	for _, o := range OrdersInRange(orders, start, end) {
		total += o.Total
	}
	return utils.Round2(total)
}

// DailyRevenue maps each date to the sum of that day's order totals.
func DailyRevenue(orders []models.Order) map[string]float64 {
	daily := make(map[string]float64)
	for _, o := range orders {
		daily[o.Date] = utils.Round2(daily[o.Date] + o.Total)
	}
	return daily
}

// TopItems ranks item names by total quantity sold, descending, ties kept
// in first-encountered order, truncated to n.
func TopItems(orders []models.Order, n int) []ItemCount {
	counts := make(map[string]int)
	var names []string
	for _, o := range orders {
		for _, it := range o.Items {
			if _, seen := counts[it.Name]; !seen {
				names = append(names, it.Name)
			}
			counts[it.Name] += it.Quantity
		}
	}

	ranked := make([]ItemCount, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, ItemCount{Name: name, Quantity: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// AverageTicket is revenue divided by order count, zero for no orders.
func AverageTicket(orders []models.Order) float64 {
	if len(orders) == 0 {
		return 0
	}
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return utils.Round2(total / float64(len(orders)))
}

// DashboardStats is the landing-page summary.
type DashboardStats struct {
	MenuItems     int     `json:"menu_items"`
	TotalOrders   int     `json:"total_orders"`
	TodayOrders   int     `json:"today_orders"`
	TodayRevenue  float64 `json:"today_revenue"`
	AverageTicket float64 `json:"average_ticket"`
}

// Dashboard computes the summary for a given day (YYYY-MM-DD).
func Dashboard(menu models.MenuDocument, orders []models.Order, today string) DashboardStats {
	todays := OrdersInRange(orders, today, today)
	return DashboardStats{
		MenuItems:     len(menu.All()),
		TotalOrders:   len(orders),
		TodayOrders:   len(todays),
		TodayRevenue:  RevenueInRange(orders, today, today),
		AverageTicket: AverageTicket(todays),
	}
}
