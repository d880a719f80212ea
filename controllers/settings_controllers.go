package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

type SettingsController struct {
	Settings *services.SettingsService
	Store    *store.FileStore
}

func NewSettingsController(settings *services.SettingsService, st *store.FileStore) *SettingsController {
	return &SettingsController{Settings: settings, Store: st}
}

// GetSettings -> current configuration
func (sc *SettingsController) GetSettings(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Current settings", sc.Settings.Settings())
}

// UpdateSettings -> replace the configuration
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req struct {
		CafeName      string  `json:"cafe_name" binding:"required"`
		MenuURL       string  `json:"menu_url"`
		TaxRate       float64 `json:"tax_rate"`
		ServiceCharge float64 `json:"service_charge_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	settings := models.Settings{
		CafeName:      req.CafeName,
		MenuURL:       req.MenuURL,
		TaxRate:       req.TaxRate,
		ServiceCharge: req.ServiceCharge,
	}
	if err := sc.Settings.Save(settings); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings saved", settings)
}

// MenuQR -> QR image for the configured menu URL
func (sc *SettingsController) MenuQR(c *gin.Context) {
	png, err := services.MenuQR(sc.Settings.Settings().MenuURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// ExportDocument -> one document's JSON text for download
func (sc *SettingsController) ExportDocument(c *gin.Context) {
	key := c.Param("key")

	known := false
	for _, k := range store.Keys() {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown document "+key))
		return
	}

	data, err := sc.Store.Export(key)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", key))
	c.Data(http.StatusOK, "application/json", data)
}

// ResetData -> restore every document to its defaults
func (sc *SettingsController) ResetData(c *gin.Context) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		utils.RespondError(c, http.StatusBadRequest, errors.New("reset must be confirmed"))
		return
	}

	if err := sc.Store.Reset(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All data reset to defaults", nil)
}
