package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/live"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

// GetAllTables -> list of tables, occupancy re-derived first
func (tc *TableController) GetAllTables(c *gin.Context) {
	if err := tc.Tables.Reconcile(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Tables.Tables())
}

// CreateTable -> register a new table number
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber string `json:"table_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.Tables.AddTable(req.TableNumber); err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventTableUpdate, Data: gin.H{"table_number": req.TableNumber}})
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", gin.H{"table_number": req.TableNumber})
}

// UpdateTableStatus -> manual status override
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	tableNumber := c.Param("table_number")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.Tables.SetStatus(tableNumber, body.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventTableUpdate, Data: gin.H{
		"table_number": tableNumber,
		"status":       body.Status,
	}})
	utils.RespondJSON(c, http.StatusOK, "Table status updated", gin.H{
		"table_number": tableNumber,
		"status":       body.Status,
	})
}

// DeleteTable -> remove a table; existing orders keep their reference
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableNumber := c.Param("table_number")

	if err := tc.Tables.DeleteTable(tableNumber); err != nil {
		respondServiceError(c, err)
		return
	}

	live.BroadcastMessage(live.Message{Event: live.EventTableUpdate, Data: gin.H{"table_number": tableNumber}})
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"table_number": tableNumber})
}
