package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	return fs
}

func seedMenu(t *testing.T, fs *store.FileStore, menu models.MenuDocument) {
	t.Helper()
	assert.NoError(t, fs.Save(store.KeyMenu, menu))
}

func seedTables(t *testing.T, fs *store.FileStore, tables []models.Table) {
	t.Helper()
	assert.NoError(t, fs.Save(store.KeyTables, tables))
}

func seedOrders(t *testing.T, fs *store.FileStore, orders []models.Order) {
	t.Helper()
	assert.NoError(t, fs.Save(store.KeyOrders, orders))
}

func smallMenu() models.MenuDocument {
	return models.MenuDocument{
		Beverages: []models.MenuItem{
			{ID: "BEV001", Name: "Latte", Price: 3.50, Category: "Coffee", Available: true, Inventory: 10},
			{ID: "BEV002", Name: "Green Tea", Price: 2.00, Category: "Tea", Available: false, Inventory: 8},
		},
		Food: []models.MenuItem{
			{ID: "FOOD001", Name: "Club Sandwich", Price: 9.00, Category: "Sandwich", Available: true, Inventory: 5},
		},
	}
}
