package services

import (
	"strings"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// TableService owns the tables document and derives occupancy from the
// live order list.
type TableService struct {
	Store store.Store
}

func NewTableService(st store.Store) *TableService {
	return &TableService{Store: st}
}

// Tables returns the current tables snapshot.
func (ts *TableService) Tables() []models.Table {
	guard := ts.Store.Guard(store.KeyTables)
	guard.Lock()
	defer guard.Unlock()

	var tables []models.Table
	ts.Store.Load(store.KeyTables, &tables)
	return tables
}

// Reconcile re-derives every table's status from the order list: any table
// referenced by an active order becomes Occupied, everything else falls
// back to Available unless it was manually Reserved. Idempotent; the
// document is only rewritten when a status actually changed.
func (ts *TableService) Reconcile() error {
	var orders []models.Order
	ts.Store.Load(store.KeyOrders, &orders)

	active := make(map[string]bool)
	for _, o := range orders {
		if o.TableNumber != "" && models.ActiveStatus(o.Status) {
			active[o.TableNumber] = true
		}
	}

	guard := ts.Store.Guard(store.KeyTables)
	guard.Lock()
	defer guard.Unlock()

	var tables []models.Table
	ts.Store.Load(store.KeyTables, &tables)

	changed := false
	for i := range tables {
		t := &tables[i]
		switch {
		case active[t.TableNumber]:
			if t.Status != models.TableOccupied {
				t.Status = models.TableOccupied
				changed = true
			}
		case t.Status != models.TableReserved:
			// Reserved is sticky; everything else reverts to Available.
			if t.Status != models.TableAvailable {
				t.Status = models.TableAvailable
				changed = true
			}
		}
	}

	if !changed {
		return nil
	}
	return ts.Store.Save(store.KeyTables, tables)
}

// SetStatus manually overrides one table's status. The override holds until
// the next reconcile re-derives Occupied from an active order.
func (ts *TableService) SetStatus(tableNumber, status string) error {
	if !models.ValidTableStatus(status) {
		return &ValidationError{Reason: "unknown table status " + status}
	}

	guard := ts.Store.Guard(store.KeyTables)
	guard.Lock()
	defer guard.Unlock()

	var tables []models.Table
	ts.Store.Load(store.KeyTables, &tables)

	for i := range tables {
		if tables[i].TableNumber != tableNumber {
			continue
		}
		tables[i].Status = status
		if err := ts.Store.Save(store.KeyTables, tables); err != nil {
			return err
		}
		utils.InfoLogger.Printf("Table %s status set to %s", tableNumber, status)
		return nil
	}
	return &NotFoundError{Kind: "table", ID: tableNumber}
}

// AddTable registers a new table number.
func (ts *TableService) AddTable(tableNumber string) error {
	tableNumber = strings.TrimSpace(tableNumber)
	if tableNumber == "" {
		return &DuplicateError{Kind: "table", ID: tableNumber}
	}

	guard := ts.Store.Guard(store.KeyTables)
	guard.Lock()
	defer guard.Unlock()

	var tables []models.Table
	ts.Store.Load(store.KeyTables, &tables)

	for _, t := range tables {
		if t.TableNumber == tableNumber {
			return &DuplicateError{Kind: "table", ID: tableNumber}
		}
	}

	tables = append(tables, models.Table{TableNumber: tableNumber, Status: models.TableAvailable})
	if err := ts.Store.Save(store.KeyTables, tables); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Table added: %s", tableNumber)
	return nil
}

// DeleteTable removes a table. Orders referencing it keep their
// table_number; dangling references are legal.
func (ts *TableService) DeleteTable(tableNumber string) error {
	guard := ts.Store.Guard(store.KeyTables)
	guard.Lock()
	defer guard.Unlock()

	var tables []models.Table
	ts.Store.Load(store.KeyTables, &tables)

	kept := tables[:0]
	found := false
	for _, t := range tables {
		if t.TableNumber == tableNumber {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return &NotFoundError{Kind: "table", ID: tableNumber}
	}

	if err := ts.Store.Save(store.KeyTables, kept); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Table deleted: %s", tableNumber)
	return nil
}
