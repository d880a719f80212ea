package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

type ReportController struct {
	Orders  *services.OrderService
	Catalog *services.CatalogService
}

func NewReportController(orders *services.OrderService, catalog *services.CatalogService) *ReportController {
	return &ReportController{Orders: orders, Catalog: catalog}
}

// rangeParams reads ?start=YYYY-MM-DD&end=YYYY-MM-DD, defaulting to the
// current month, same as the original analytics page.
func rangeParams(c *gin.Context) (string, string) {
	now := time.Now()
	start := c.DefaultQuery("start", now.Format("2006-01")+"-01")
	end := c.DefaultQuery("end", now.Format("2006-01-02"))
	return start, end
}

// Dashboard -> landing-page summary for today
func (rc *ReportController) Dashboard(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	stats := services.Dashboard(rc.Catalog.Menu(), rc.Orders.Orders(), today)
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// Analytics -> revenue, order count, average ticket, daily revenue and top
// items over a date range
func (rc *ReportController) Analytics(c *gin.Context) {
	start, end := rangeParams(c)
	topN, err := strconv.Atoi(c.DefaultQuery("top", "10"))
	if err != nil || topN < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid top parameter"))
		return
	}

	inRange := services.OrdersInRange(rc.Orders.Orders(), start, end)
	utils.RespondJSON(c, http.StatusOK, "Sales analytics", gin.H{
		"start":          start,
		"end":            end,
		"revenue":        services.RevenueInRange(inRange, start, end),
		"orders":         len(inRange),
		"average_ticket": services.AverageTicket(inRange),
		"daily_revenue":  services.DailyRevenue(inRange),
		"top_items":      services.TopItems(inRange, topN),
	})
}

// RevenueChart -> daily revenue over a range as a PNG bar chart
func (rc *ReportController) RevenueChart(c *gin.Context) {
	start, end := rangeParams(c)
	inRange := services.OrdersInRange(rc.Orders.Orders(), start, end)

	png, err := services.DailyRevenueChart(inRange)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ExportOrdersExcel -> order history over a range as a spreadsheet
func (rc *ReportController) ExportOrdersExcel(c *gin.Context) {
	start, end := rangeParams(c)
	inRange := services.OrdersInRange(rc.Orders.Orders(), start, end)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	headers := []string{
		"ID", "Customer", "Table", "Date", "Time", "Status", "Payment",
		"Subtotal", "Discount", "Tax", "ServiceCharge", "Total",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range inRange {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.TableNumber)
		row.AddCell().SetValue(o.Date)
		row.AddCell().SetValue(o.Time)
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(o.PaymentStatus)
		row.AddCell().SetValue(o.Subtotal)
		row.AddCell().SetValue(o.Discount)
		row.AddCell().SetValue(o.Tax)
		row.AddCell().SetValue(o.ServiceCharge)
		row.AddCell().SetValue(o.Total)
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		utils.ErrorLogger.Printf("Writing orders spreadsheet: %v", err)
	}
}
