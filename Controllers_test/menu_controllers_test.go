package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMenu(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAs(t, r, "staff", "staff123")

	w := doJSON(t, r, "GET", "/menu", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["beverages"].([]interface{}), 5)
	assert.Len(t, data["food"].([]interface{}), 5)
}

func TestCreateMenuItem(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, "POST", "/admin/menu/beverages", token, map[string]interface{}{
		"name":      "Mocha",
		"price":     4.50,
		"category":  "Coffee",
		"inventory": 20,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	// Seeded beverages end at BEV005.
	assert.Equal(t, "BEV006", data["id"])
	assert.Equal(t, true, data["available"])
}

func TestCreateMenuItemValidation(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, "POST", "/admin/menu/beverages", token, map[string]interface{}{
		"name":     "Mocha",
		"price":    -2.0,
		"category": "Coffee",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteMenuItem(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAs(t, r, "admin", "admin123")

	w := doJSON(t, r, "PUT", "/admin/menu/items/BEV001", token, map[string]interface{}{
		"name":      "Espresso Doppio",
		"price":     3.00,
		"category":  "Coffee",
		"inventory": 30,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "PUT", "/admin/menu/items/BEV999", token, map[string]interface{}{
		"name":     "Ghost",
		"price":    1.00,
		"category": "Coffee",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "DELETE", "/admin/menu/items/BEV001", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Idempotent: deleting again still succeeds.
	w = doJSON(t, r, "DELETE", "/admin/menu/items/BEV001", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAvailableItemsIsPublic(t *testing.T) {
	r, _, _ := setupApp(t)

	w := doJSON(t, r, "GET", "/menu/available", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 10)
}
