package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
)

func tableStatus(t *testing.T, ts *TableService, number string) string {
	t.Helper()
	for _, tbl := range ts.Tables() {
		if tbl.TableNumber == number {
			return tbl.Status
		}
	}
	t.Fatalf("table %s not found", number)
	return ""
}

func TestReconcileDerivesOccupancy(t *testing.T) {
	fs := newTestStore(t)
	seedTables(t, fs, []models.Table{
		{TableNumber: "3", Status: models.TableAvailable},
		{TableNumber: "4", Status: models.TableAvailable},
	})
	seedOrders(t, fs, []models.Order{
		{ID: "ORD00001", TableNumber: "3", Status: models.StatusPreparing},
	})
	ts := NewTableService(fs)

	assert.NoError(t, ts.Reconcile())
	assert.Equal(t, models.TableOccupied, tableStatus(t, ts, "3"))
	assert.Equal(t, models.TableAvailable, tableStatus(t, ts, "4"))

	// Once the order completes, the table reverts.
	seedOrders(t, fs, []models.Order{
		{ID: "ORD00001", TableNumber: "3", Status: models.StatusCompleted},
	})
	assert.NoError(t, ts.Reconcile())
	assert.Equal(t, models.TableAvailable, tableStatus(t, ts, "3"))
}

func TestReconcileIsIdempotent(t *testing.T) {
	fs := newTestStore(t)
	seedTables(t, fs, []models.Table{
		{TableNumber: "1", Status: models.TableOccupied},
		{TableNumber: "2", Status: models.TableReserved},
	})
	seedOrders(t, fs, []models.Order{
		{ID: "ORD00001", TableNumber: "1", Status: models.StatusReady},
	})
	ts := NewTableService(fs)

	assert.NoError(t, ts.Reconcile())
	first := ts.Tables()
	assert.NoError(t, ts.Reconcile())
	assert.Equal(t, first, ts.Tables())
}

func TestReservedIsSticky(t *testing.T) {
	fs := newTestStore(t)
	seedTables(t, fs, []models.Table{{TableNumber: "7", Status: models.TableAvailable}})
	seedOrders(t, fs, []models.Order{})
	ts := NewTableService(fs)

	assert.NoError(t, ts.SetStatus("7", models.TableReserved))
	assert.NoError(t, ts.Reconcile())
	assert.Equal(t, models.TableReserved, tableStatus(t, ts, "7"))

	// An active order supersedes the reservation.
	seedOrders(t, fs, []models.Order{
		{ID: "ORD00001", TableNumber: "7", Status: models.StatusPending},
	})
	assert.NoError(t, ts.Reconcile())
	assert.Equal(t, models.TableOccupied, tableStatus(t, ts, "7"))
}

func TestManualOccupiedRevertsWithoutActiveOrder(t *testing.T) {
	fs := newTestStore(t)
	seedTables(t, fs, []models.Table{{TableNumber: "5", Status: models.TableAvailable}})
	seedOrders(t, fs, []models.Order{})
	ts := NewTableService(fs)

	assert.NoError(t, ts.SetStatus("5", models.TableOccupied))
	assert.NoError(t, ts.Reconcile())
	assert.Equal(t, models.TableAvailable, tableStatus(t, ts, "5"))
}

func TestSetStatusValidation(t *testing.T) {
	fs := newTestStore(t)
	seedTables(t, fs, []models.Table{{TableNumber: "1", Status: models.TableAvailable}})
	ts := NewTableService(fs)

	var validation *ValidationError
	assert.ErrorAs(t, ts.SetStatus("1", "Busy"), &validation)

	var notFound *NotFoundError
	assert.ErrorAs(t, ts.SetStatus("99", models.TableReserved), &notFound)
}

func TestAddTable(t *testing.T) {
	fs := newTestStore(t)
	seedTables(t, fs, []models.Table{{TableNumber: "1", Status: models.TableAvailable}})
	ts := NewTableService(fs)

	assert.NoError(t, ts.AddTable("2"))
	assert.Len(t, ts.Tables(), 2)

	var duplicate *DuplicateError
	assert.ErrorAs(t, ts.AddTable("1"), &duplicate)
	assert.ErrorAs(t, ts.AddTable("   "), &duplicate)
}

func TestDeleteTableKeepsOrderReferences(t *testing.T) {
	fs := newTestStore(t)
	seedTables(t, fs, []models.Table{{TableNumber: "1", Status: models.TableAvailable}})
	seedOrders(t, fs, []models.Order{
		{ID: "ORD00001", TableNumber: "1", Status: models.StatusPending},
	})
	ts := NewTableService(fs)

	assert.NoError(t, ts.DeleteTable("1"))
	assert.Empty(t, ts.Tables())

	// The order still references the deleted table; that is legal.
	var orders []models.Order
	assert.NoError(t, fs.Load("orders", &orders))
	assert.Equal(t, "1", orders[0].TableNumber)

	var notFound *NotFoundError
	assert.ErrorAs(t, ts.DeleteTable("1"), &notFound)
}
