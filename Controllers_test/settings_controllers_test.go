package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
)

func TestGetAndUpdateSettings(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, "GET", "/admin/settings", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "My Cafe", data["cafe_name"])

	w = doJSON(t, r, "PUT", "/admin/settings", token, map[string]interface{}{
		"cafe_name":           "Corner Cafe",
		"menu_url":            "https://corner.example/menu",
		"tax_rate":            0.08,
		"service_charge_rate": 0.05,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/admin/settings", token, nil)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Corner Cafe", data["cafe_name"])
	assert.Equal(t, 0.08, data["tax_rate"])
}

func TestExportDocument(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, "GET", "/admin/export/menu", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Espresso")

	w = doJSON(t, r, "GET", "/admin/export/receipts", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetData(t *testing.T) {
	r, st, _ := setupApp(t)
	token := loginAs(t, r, "admin", "admin123")

	assert.NoError(t, st.Save(store.KeyOrders, []models.Order{{ID: "ORD00001"}}))

	w := doJSON(t, r, "POST", "/admin/reset", token, map[string]bool{"confirm": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/admin/reset", token, map[string]bool{"confirm": true})
	assert.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	assert.NoError(t, st.Load(store.KeyOrders, &orders))
	assert.Empty(t, orders)
}

func TestMenuQRIsPublic(t *testing.T) {
	r, _, _ := setupApp(t)

	w := doJSON(t, r, "GET", "/menu/qr", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestDashboardStats(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAs(t, r, "staff", "staff123")

	doJSON(t, r, "POST", "/cart", token, map[string]interface{}{"item_id": "BEV001", "quantity": 1})
	doJSON(t, r, "POST", "/orders", token, map[string]interface{}{"customer_name": "Gina"})

	w := doJSON(t, r, "GET", "/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["menu_items"])
	assert.Equal(t, float64(1), data["total_orders"])
	assert.Equal(t, float64(1), data["today_orders"])
}
