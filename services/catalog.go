package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// CatalogService owns the menu document: item CRUD, id allocation and the
// available-items view used for order composition.
type CatalogService struct {
	Store store.Store
}

func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{Store: st}
}

// ItemFields carries the mutable fields of a menu item.
type ItemFields struct {
	Name        string
	Price       float64
	Category    string
	Description string
	Inventory   int
	Available   bool
}

func (f ItemFields) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Reason: "item name is required"}
	}
	if strings.TrimSpace(f.Category) == "" {
		return &ValidationError{Reason: "item category is required"}
	}
	if f.Price <= 0 {
		return &ValidationError{Reason: "item price must be greater than zero"}
	}
	if f.Inventory < 0 {
		return &ValidationError{Reason: "item inventory cannot be negative"}
	}
	return nil
}

// Menu returns the current menu document snapshot.
func (cs *CatalogService) Menu() models.MenuDocument {
	guard := cs.Store.Guard(store.KeyMenu)
	guard.Lock()
	defer guard.Unlock()

	var menu models.MenuDocument
	cs.Store.Load(store.KeyMenu, &menu)
	return menu
}

// AddItem appends a new item of the given type ("beverages" or "food"),
// assigning the next id within its prefix.
func (cs *CatalogService) AddItem(itemType string, fields ItemFields) (models.MenuItem, error) {
	if err := fields.validate(); err != nil {
		return models.MenuItem{}, err
	}

	guard := cs.Store.Guard(store.KeyMenu)
	guard.Lock()
	defer guard.Unlock()

	var menu models.MenuDocument
	cs.Store.Load(store.KeyMenu, &menu)

	section := menu.Section(itemType)
	if section == nil {
		return models.MenuItem{}, &ValidationError{Reason: fmt.Sprintf("unknown item type %q", itemType)}
	}

	prefix := models.PrefixFor(itemType)
	item := models.MenuItem{
		ID:          nextItemID(prefix, *section),
		Name:        fields.Name,
		Price:       fields.Price,
		Category:    fields.Category,
		Available:   fields.Available,
		Description: fields.Description,
		Inventory:   fields.Inventory,
	}
	*section = append(*section, item)

	if err := cs.Store.Save(store.KeyMenu, menu); err != nil {
		return models.MenuItem{}, err
	}

	utils.InfoLogger.Printf("Menu item added: %s (%s)", item.ID, item.Name)
	return item, nil
}

// nextItemID computes prefix + zero-padded(max numeric suffix + 1) over the
// items of that prefix, starting at 1 when none exist.
func nextItemID(prefix string, items []models.MenuItem) string {
	max := 0
	for _, it := range items {
		if !strings.HasPrefix(it.ID, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(it.ID, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// UpdateItem replaces the mutable fields of an existing item. The id and
// its prefix never change.
func (cs *CatalogService) UpdateItem(id string, fields ItemFields) error {
	if err := fields.validate(); err != nil {
		return err
	}

	guard := cs.Store.Guard(store.KeyMenu)
	guard.Lock()
	defer guard.Unlock()

	var menu models.MenuDocument
	cs.Store.Load(store.KeyMenu, &menu)

	for _, section := range []*[]models.MenuItem{&menu.Beverages, &menu.Food} {
		for i := range *section {
			if (*section)[i].ID != id {
				continue
			}
			item := &(*section)[i]
			item.Name = fields.Name
			item.Price = fields.Price
			item.Category = fields.Category
			item.Description = fields.Description
			item.Inventory = fields.Inventory
			item.Available = fields.Available

			if err := cs.Store.Save(store.KeyMenu, menu); err != nil {
				return err
			}
			utils.InfoLogger.Printf("Menu item updated: %s", id)
			return nil
		}
	}
	return &NotFoundError{Kind: "menu item", ID: id}
}

// DeleteItem removes an item. Deleting an unknown id is a no-op.
func (cs *CatalogService) DeleteItem(id string) error {
	guard := cs.Store.Guard(store.KeyMenu)
	guard.Lock()
	defer guard.Unlock()

	var menu models.MenuDocument
	cs.Store.Load(store.KeyMenu, &menu)

	removed := false
	for _, section := range []*[]models.MenuItem{&menu.Beverages, &menu.Food} {
		kept := (*section)[:0]
		for _, it := range *section {
			if it.ID == id {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		*section = kept
	}
	if !removed {
		return nil
	}

	if err := cs.Store.Save(store.KeyMenu, menu); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Menu item deleted: %s", id)
	return nil
}

// AvailableItems returns the items open for ordering, both sections
// flattened. Each call re-reads the document, so the view is restartable.
func (cs *CatalogService) AvailableItems() []models.MenuItem {
	var available []models.MenuItem
	for _, it := range cs.Menu().All() {
		if it.Available {
			available = append(available, it)
		}
	}
	return available
}

// ItemByID looks an item up across both sections.
func (cs *CatalogService) ItemByID(id string) (models.MenuItem, bool) {
	for _, it := range cs.Menu().All() {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}
