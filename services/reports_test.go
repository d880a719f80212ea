package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
)

func reportFixture() []models.Order {
	return []models.Order{
		{
			ID: "ORD00001", Date: "2026-08-01", Total: 10.00,
			Items: []models.OrderItem{
				{Name: "Latte", Quantity: 2},
				{Name: "Croissant", Quantity: 1},
			},
		},
		{
			ID: "ORD00002", Date: "2026-08-02", Total: 5.50,
			Items: []models.OrderItem{
				{Name: "Latte", Quantity: 1},
			},
		},
		{
			ID: "ORD00003", Date: "2026-08-04", Total: 20.00,
			Items: []models.OrderItem{
				{Name: "Club Sandwich", Quantity: 1},
			},
		},
	}
}

func TestRevenueInRangeInclusiveBounds(t *testing.T) {
	orders := reportFixture()

	assert.Equal(t, 15.50, RevenueInRange(orders, "2026-08-01", "2026-08-02"))
	assert.Equal(t, 35.50, RevenueInRange(orders, "2026-08-01", "2026-08-04"))
	assert.Equal(t, 5.50, RevenueInRange(orders, "2026-08-02", "2026-08-02"))
	assert.Equal(t, 0.0, RevenueInRange(orders, "2026-08-05", "2026-08-31"))
}

func TestDailyRevenue(t *testing.T) {
	orders := append(reportFixture(), models.Order{ID: "ORD00004", Date: "2026-08-01", Total: 2.50})

	daily := DailyRevenue(orders)
	assert.Equal(t, 12.50, daily["2026-08-01"])
	assert.Equal(t, 5.50, daily["2026-08-02"])
	assert.Equal(t, 20.00, daily["2026-08-04"])
	assert.Len(t, daily, 3)
}

func TestTopItemsRankingAndTies(t *testing.T) {
	top := TopItems(reportFixture(), 10)

	assert.Equal(t, []ItemCount{
		{Name: "Latte", Quantity: 3},
		{Name: "Croissant", Quantity: 1},
		{Name: "Club Sandwich", Quantity: 1},
	}, top)

	// Ties keep first-encountered order: Croissant appeared before Club
	// Sandwich, so it stays ahead at equal quantity.
	assert.Equal(t, "Croissant", top[1].Name)

	truncated := TopItems(reportFixture(), 1)
	assert.Equal(t, []ItemCount{{Name: "Latte", Quantity: 3}}, truncated)

	assert.Empty(t, TopItems(nil, 5))
}

func TestAverageTicket(t *testing.T) {
	assert.Equal(t, 0.0, AverageTicket(nil))
	assert.InDelta(t, 11.83, AverageTicket(reportFixture()), 0.01)
}

func TestDashboard(t *testing.T) {
	menu := smallMenu()
	stats := Dashboard(menu, reportFixture(), "2026-08-01")

	assert.Equal(t, 3, stats.MenuItems)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.TodayOrders)
	assert.Equal(t, 10.00, stats.TodayRevenue)
	assert.Equal(t, 10.00, stats.AverageTicket)
}
