package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// Session is the explicit per-session context: the logged-in user and the
// in-progress cart. One session composes one order at a time.
type Session struct {
	User models.User
	Cart []models.CartItem
}

// OrderService owns the orders document: cart accumulation, the
// place-order transaction and status updates.
type OrderService struct {
	Store   store.Store
	Catalog *CatalogService
	Tables  *TableService
}

func NewOrderService(st store.Store, catalog *CatalogService, tables *TableService) *OrderService {
	return &OrderService{Store: st, Catalog: catalog, Tables: tables}
}

// Orders returns the current orders snapshot.
func (s *OrderService) Orders() []models.Order {
	guard := s.Store.Guard(store.KeyOrders)
	guard.Lock()
	defer guard.Unlock()

	var orders []models.Order
	s.Store.Load(store.KeyOrders, &orders)
	return orders
}

// CartAdd appends a line to the session cart. The inventory check here is
// advisory; PlaceOrder re-validates against the catalog under lock.
func (s *OrderService) CartAdd(sess *Session, itemID string, quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Reason: "quantity must be greater than zero"}
	}

	item, ok := s.Catalog.ItemByID(itemID)
	if !ok {
		return &NotFoundError{Kind: "menu item", ID: itemID}
	}
	if quantity > item.Inventory {
		return &InsufficientInventoryError{ItemName: item.Name, Available: item.Inventory}
	}

	sess.Cart = append(sess.Cart, models.CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
		Subtotal: utils.Round2(item.Price * float64(quantity)),
	})
	return nil
}

// CartRemove drops one line by position.
func (s *OrderService) CartRemove(sess *Session, index int) error {
	if index < 0 || index >= len(sess.Cart) {
		return &ValidationError{Reason: "no such cart line"}
	}
	sess.Cart = append(sess.Cart[:index], sess.Cart[index+1:]...)
	return nil
}

// CartSubtotal sums the cart's line subtotals.
func CartSubtotal(cart []models.CartItem) float64 {
	var sum float64
	for _, line := range cart {
		sum += line.Subtotal
	}
	return utils.Round2(sum)
}

// PlaceOrderRequest carries the order-level inputs; line items come from
// the session cart and rates from the settings document.
type PlaceOrderRequest struct {
	CustomerName  string
	TableNumber   string
	Discount      float64
	TaxRate       float64
	ServiceRate   float64
	PaymentStatus string
}

// PlaceOrder commits the cart as a new order in one logical transaction:
// every cart line is validated against current inventory before any
// decrement, so either the order is created with matching decrements or
// nothing changes. The cart is cleared on success and table occupancy is
// re-derived.
func (s *OrderService) PlaceOrder(sess *Session, req PlaceOrderRequest) (models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return models.Order{}, &ValidationError{Reason: "customer name is required"}
	}
	if len(sess.Cart) == 0 {
		return models.Order{}, &ValidationError{Reason: "cart is empty"}
	}

	subtotal := CartSubtotal(sess.Cart)
	if req.Discount < 0 || req.Discount > subtotal {
		return models.Order{}, &ValidationError{Reason: "discount must be between 0 and the cart subtotal"}
	}
	if req.PaymentStatus == "" {
		req.PaymentStatus = models.PaymentUnpaid
	}
	if !models.ValidPaymentStatus(req.PaymentStatus) {
		return models.Order{}, &ValidationError{Reason: "unknown payment status " + req.PaymentStatus}
	}

	// Reserve inventory. The menu guard is held across the full
	// check-then-decrement so no partial decrement can ever be observed.
	menuGuard := s.Store.Guard(store.KeyMenu)
	menuGuard.Lock()

	var menu models.MenuDocument
	s.Store.Load(store.KeyMenu, &menu)

	// Cart lines for the same item are validated against their combined
	// quantity, not line by line.
	requested := make(map[string]int)
	items := make(map[string]*models.MenuItem)
	for _, ci := range sess.Cart {
		item, ok := items[ci.ID]
		if !ok {
			item = findItem(&menu, ci.ID)
			if item == nil {
				menuGuard.Unlock()
				return models.Order{}, &NotFoundError{Kind: "menu item", ID: ci.ID}
			}
			items[ci.ID] = item
		}
		requested[ci.ID] += ci.Quantity
		if requested[ci.ID] > item.Inventory {
			menuGuard.Unlock()
			return models.Order{}, &InsufficientInventoryError{ItemName: item.Name, Available: item.Inventory}
		}
	}
	for id, qty := range requested {
		items[id].Inventory -= qty
	}
	if err := s.Store.Save(store.KeyMenu, menu); err != nil {
		menuGuard.Unlock()
		return models.Order{}, err
	}
	menuGuard.Unlock()

	taxable := subtotal - req.Discount
	now := time.Now()
	order := models.Order{
		CustomerName:  req.CustomerName,
		TableNumber:   req.TableNumber,
		Items:         cartToItems(sess.Cart),
		Subtotal:      subtotal,
		Discount:      utils.Round2(req.Discount),
		Tax:           utils.Round2(req.TaxRate * taxable),
		ServiceCharge: utils.Round2(req.ServiceRate * taxable),
		Date:          now.Format("2006-01-02"),
		Time:          now.Format("15:04:05"),
		Timestamp:     now.Format(time.RFC3339),
		Status:        models.StatusPending,
		PaymentStatus: req.PaymentStatus,
	}
	order.Total = utils.Round2(order.Subtotal - order.Discount + order.Tax + order.ServiceCharge)

	ordersGuard := s.Store.Guard(store.KeyOrders)
	ordersGuard.Lock()

	var orders []models.Order
	s.Store.Load(store.KeyOrders, &orders)
	// Sequence derived from the current count; callers tolerate gaps if
	// orders were ever removed out of band.
	order.ID = fmt.Sprintf("ORD%05d", len(orders)+1)
	orders = append(orders, order)
	if err := s.Store.Save(store.KeyOrders, orders); err != nil {
		ordersGuard.Unlock()
		return models.Order{}, err
	}
	ordersGuard.Unlock()

	sess.Cart = nil

	if err := s.Tables.Reconcile(); err != nil {
		utils.ErrorLogger.Printf("Reconciling tables after %s: %v", order.ID, err)
	}

	utils.InfoLogger.Printf("Order %s placed by %s (total %.2f)", order.ID, order.CustomerName, order.Total)
	return order, nil
}

func findItem(menu *models.MenuDocument, id string) *models.MenuItem {
	for _, section := range []*[]models.MenuItem{&menu.Beverages, &menu.Food} {
		for i := range *section {
			if (*section)[i].ID == id {
				return &(*section)[i]
			}
		}
	}
	return nil
}

func cartToItems(cart []models.CartItem) []models.OrderItem {
	items := make([]models.OrderItem, len(cart))
	for i, ci := range cart {
		items[i] = models.OrderItem{
			ID:       ci.ID,
			Name:     ci.Name,
			Price:    ci.Price,
			Quantity: ci.Quantity,
			Subtotal: ci.Subtotal,
		}
	}
	return items
}

// UpdateStatus sets an order's status. Any of the five statuses is
// accepted; staff actions are not restricted to a forward-only order.
func (s *OrderService) UpdateStatus(orderID, newStatus string) error {
	if !models.ValidStatus(newStatus) {
		return &ValidationError{Reason: "unknown order status " + newStatus}
	}

	guard := s.Store.Guard(store.KeyOrders)
	guard.Lock()

	var orders []models.Order
	s.Store.Load(store.KeyOrders, &orders)

	found := false
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = newStatus
			found = true
			break
		}
	}
	if !found {
		guard.Unlock()
		return &NotFoundError{Kind: "order", ID: orderID}
	}
	if err := s.Store.Save(store.KeyOrders, orders); err != nil {
		guard.Unlock()
		return err
	}
	guard.Unlock()

	if err := s.Tables.Reconcile(); err != nil {
		utils.ErrorLogger.Printf("Reconciling tables after %s status change: %v", orderID, err)
	}

	utils.InfoLogger.Printf("Order %s status changed to %s", orderID, newStatus)
	return nil
}

// OrderByID looks up one order.
func (s *OrderService) OrderByID(orderID string) (models.Order, error) {
	for _, o := range s.Orders() {
		if o.ID == orderID {
			return o, nil
		}
	}
	return models.Order{}, &NotFoundError{Kind: "order", ID: orderID}
}

// History returns orders newest first, optionally filtered by status
// and/or date (YYYY-MM-DD). Empty filters match everything.
func (s *OrderService) History(status, date string) []models.Order {
	var filtered []models.Order
	for _, o := range s.Orders() {
		if status != "" && o.Status != status {
			continue
		}
		if date != "" && o.Date != date {
			continue
		}
		filtered = append(filtered, o)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp > filtered[j].Timestamp
	})
	return filtered
}
