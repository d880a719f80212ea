package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)
	return fs
}

func TestSaveLoadRoundtrip(t *testing.T) {
	fs := newTestStore(t)

	tables := []models.Table{
		{TableNumber: "1", Status: models.TableAvailable},
		{TableNumber: "2", Status: models.TableReserved},
	}
	assert.NoError(t, fs.Save(KeyTables, tables))

	var loaded []models.Table
	assert.NoError(t, fs.Load(KeyTables, &loaded))
	assert.Equal(t, tables, loaded)
}

func TestLoadMissingDocumentFailsOpen(t *testing.T) {
	fs := newTestStore(t)

	orders := []models.Order{}
	assert.NoError(t, fs.Load(KeyOrders, &orders))
	assert.Empty(t, orders)
}

func TestLoadCorruptDocumentFailsOpen(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "orders_data.json"), []byte("{not json"), 0o644))

	var orders []models.Order
	assert.NoError(t, fs.Load(KeyOrders, &orders))
	assert.Empty(t, orders)
}

func TestUnknownKeyRejected(t *testing.T) {
	fs := newTestStore(t)

	err := fs.Save("receipts", []string{})
	assert.Error(t, err)
	err = fs.Load("receipts", &[]string{})
	assert.Error(t, err)
}

func TestSeedCreatesDefaultsOnce(t *testing.T) {
	fs := newTestStore(t)
	assert.NoError(t, fs.Seed())

	var menu models.MenuDocument
	assert.NoError(t, fs.Load(KeyMenu, &menu))
	assert.Len(t, menu.Beverages, 5)
	assert.Len(t, menu.Food, 5)

	var tables []models.Table
	assert.NoError(t, fs.Load(KeyTables, &tables))
	assert.Len(t, tables, 10)

	// A second seed must not clobber existing documents.
	tables[0].Status = models.TableReserved
	assert.NoError(t, fs.Save(KeyTables, tables))
	assert.NoError(t, fs.Seed())

	var again []models.Table
	assert.NoError(t, fs.Load(KeyTables, &again))
	assert.Equal(t, models.TableReserved, again[0].Status)
}

func TestResetRestoresDefaults(t *testing.T) {
	fs := newTestStore(t)
	assert.NoError(t, fs.Seed())

	assert.NoError(t, fs.Save(KeyOrders, []models.Order{{ID: "ORD00001"}}))
	assert.NoError(t, fs.Reset())

	var orders []models.Order
	assert.NoError(t, fs.Load(KeyOrders, &orders))
	assert.Empty(t, orders)
}

func TestExportReturnsStoredJSON(t *testing.T) {
	fs := newTestStore(t)

	settings := models.DefaultSettings()
	assert.NoError(t, fs.Save(KeySettings, settings))

	data, err := fs.Export(KeySettings)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "My Cafe")
	assert.Contains(t, string(data), "barcode_url")
}
