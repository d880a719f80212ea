package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/live"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

type OrderController struct {
	Orders   *services.OrderService
	Settings *services.SettingsService
	Sessions *SessionManager
	Mailer   services.BillMailer
}

func NewOrderController(orders *services.OrderService, settings *services.SettingsService, sessions *SessionManager, mailer services.BillMailer) *OrderController {
	return &OrderController{Orders: orders, Settings: settings, Sessions: sessions, Mailer: mailer}
}

// GetCart -> the session's uncommitted lines plus running subtotal
func (oc *OrderController) GetCart(c *gin.Context) {
	sess := sessionFor(c, oc.Sessions)
	utils.RespondJSON(c, http.StatusOK, "Current cart", gin.H{
		"items":    sess.Cart,
		"subtotal": services.CartSubtotal(sess.Cart),
	})
}

// AddCartItem -> append a line (advisory inventory check)
func (oc *OrderController) AddCartItem(c *gin.Context) {
	var req struct {
		ItemID   string `json:"item_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sess := sessionFor(c, oc.Sessions)
	if err := oc.Orders.CartAdd(sess, req.ItemID, req.Quantity); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", sess.Cart)
}

// RemoveCartItem -> drop a line by position
func (oc *OrderController) RemoveCartItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid cart index"))
		return
	}

	sess := sessionFor(c, oc.Sessions)
	if err := oc.Orders.CartRemove(sess, index); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", sess.Cart)
}

// PlaceOrder -> commit the cart as a new order
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req struct {
		CustomerName  string  `json:"customer_name" binding:"required"`
		TableNumber   string  `json:"table_number"`
		Discount      float64 `json:"discount"`
		PaymentStatus string  `json:"payment_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	settings := oc.Settings.Settings()
	sess := sessionFor(c, oc.Sessions)

	order, err := oc.Orders.PlaceOrder(sess, services.PlaceOrderRequest{
		CustomerName:  req.CustomerName,
		TableNumber:   req.TableNumber,
		Discount:      req.Discount,
		TaxRate:       settings.TaxRate,
		ServiceRate:   settings.ServiceCharge,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventOrderCreate, Data: order})
	utils.RespondJSON(c, http.StatusCreated, fmt.Sprintf("Order %s placed", order.ID), order)
}

// GetAllOrders -> history, newest first, optional status/date filters
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	status := c.Query("status")
	date := c.Query("date")
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Orders.History(status, date))
}

// GetOrderByID -> one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Orders.OrderByID(c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> staff status change, any of the five statuses
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Orders.UpdateStatus(orderID, body.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventOrderUpdate, Data: gin.H{
		"order_id": orderID,
		"status":   body.Status,
	}})
	utils.RespondJSON(c, http.StatusOK, "Order status updated", gin.H{
		"order_id": orderID,
		"status":   body.Status,
	})
}

// DownloadBill -> PDF bill for one order
func (oc *OrderController) DownloadBill(c *gin.Context) {
	order, err := oc.Orders.OrderByID(c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	bill, err := services.RenderBill(oc.Settings.Settings(), order)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", bill)
}

// EmailBill -> render the bill and mail it to the customer
func (oc *OrderController) EmailBill(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.OrderByID(c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	bill, err := services.RenderBill(oc.Settings.Settings(), order)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := oc.Mailer.SendBill(req.Email, order, bill); err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Bill sent", gin.H{"order_id": order.ID, "email": req.Email})
}
