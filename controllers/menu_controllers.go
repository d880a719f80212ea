package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/live"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetMenu -> full menu document, both sections
func (mc *MenuController) GetMenu(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Current menu", mc.Catalog.Menu())
}

// GetAvailableItems -> items open for ordering
func (mc *MenuController) GetAvailableItems(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Available items", mc.Catalog.AvailableItems())
}

type itemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Inventory   int     `json:"inventory"`
	Available   *bool   `json:"available"`
}

func (r itemRequest) fields() services.ItemFields {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return services.ItemFields{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
		Inventory:   r.Inventory,
		Available:   available,
	}
}

// CreateItem -> add an item to one menu section
func (mc *MenuController) CreateItem(c *gin.Context) {
	itemType := c.Param("type")

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Catalog.AddItem(itemType, req.fields())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventMenuUpdate, Data: item})
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateItem -> replace an item's mutable fields
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id := c.Param("item_id")

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Catalog.UpdateItem(id, req.fields()); err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventMenuUpdate, Data: gin.H{"id": id}})
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", gin.H{"id": id})
}

// DeleteItem -> remove an item; unknown ids are a no-op
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id := c.Param("item_id")

	if err := mc.Catalog.DeleteItem(id); err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventMenuUpdate, Data: gin.H{"id": id}})
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": id})
}
