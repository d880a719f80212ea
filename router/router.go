package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/controllers"
	"github.com/yeremiapane/cafe-pos/middlewares"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/store"
)

// SetupRouter wires every controller onto the gin engine. Staff accounts
// reach the dashboard, orders, cart and tables; menu editing, analytics,
// settings and data management are admin pages.
func SetupRouter(st *store.FileStore, mailer services.BillMailer) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	catalog := services.NewCatalogService(st)
	tables := services.NewTableService(st)
	orders := services.NewOrderService(st, catalog, tables)
	settings := services.NewSettingsService(st)
	auth := services.NewAuthService(st)
	sessions := controllers.NewSessionManager()

	authCtrl := controllers.NewAuthController(auth, sessions)
	menuCtrl := controllers.NewMenuController(catalog)
	tableCtrl := controllers.NewTableController(tables)
	orderCtrl := controllers.NewOrderController(orders, settings, sessions, mailer)
	reportCtrl := controllers.NewReportController(orders, catalog)
	settingsCtrl := controllers.NewSettingsController(settings, st)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
	}

	// Customers scan this from the printed card, no login involved.
	r.GET("/menu/qr", settingsCtrl.MenuQR)
	r.GET("/menu/available", menuCtrl.GetAvailableItems)

	// ----------------------------------------------------------------
	//                      STAFF + ADMIN ROUTES
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.POST("/logout", authCtrl.Logout)
		authed.GET("/profile", authCtrl.Profile)
		authed.GET("/ws", controllers.LiveHandler)

		authed.GET("/dashboard", reportCtrl.Dashboard)

		authed.GET("/menu", menuCtrl.GetMenu)

		authed.GET("/tables", tableCtrl.GetAllTables)
		authed.POST("/tables", tableCtrl.CreateTable)
		authed.PATCH("/tables/:table_number", tableCtrl.UpdateTableStatus)
		authed.DELETE("/tables/:table_number", tableCtrl.DeleteTable)

		authed.GET("/cart", orderCtrl.GetCart)
		authed.POST("/cart", orderCtrl.AddCartItem)
		authed.DELETE("/cart/:index", orderCtrl.RemoveCartItem)

		authed.POST("/orders", orderCtrl.PlaceOrder)
		authed.GET("/orders", orderCtrl.GetAllOrders)
		authed.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		authed.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		authed.GET("/orders/:order_id/bill", orderCtrl.DownloadBill)
		authed.POST("/orders/:order_id/email", orderCtrl.EmailBill)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/menu/:type", menuCtrl.CreateItem)
		admin.PUT("/menu/items/:item_id", menuCtrl.UpdateItem)
		admin.DELETE("/menu/items/:item_id", menuCtrl.DeleteItem)

		admin.GET("/analytics", reportCtrl.Analytics)
		admin.GET("/analytics/chart", reportCtrl.RevenueChart)
		admin.GET("/analytics/export", reportCtrl.ExportOrdersExcel)

		admin.GET("/settings", settingsCtrl.GetSettings)
		admin.PUT("/settings", settingsCtrl.UpdateSettings)
		admin.GET("/export/:key", settingsCtrl.ExportDocument)
		admin.POST("/reset", settingsCtrl.ResetData)
	}

	return r
}
