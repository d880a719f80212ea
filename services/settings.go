package services

import (
	"strings"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/store"
	"github.com/yeremiapane/cafe-pos/utils"
)

// SettingsService owns the singleton settings document.
type SettingsService struct {
	Store store.Store
}

func NewSettingsService(st store.Store) *SettingsService {
	return &SettingsService{Store: st}
}

// Settings returns the current configuration, falling back to defaults
// when the document is missing or empty.
func (ss *SettingsService) Settings() models.Settings {
	guard := ss.Store.Guard(store.KeySettings)
	guard.Lock()
	defer guard.Unlock()

	settings := models.DefaultSettings()
	ss.Store.Load(store.KeySettings, &settings)
	return settings
}

// Save replaces the configuration.
func (ss *SettingsService) Save(settings models.Settings) error {
	if strings.TrimSpace(settings.CafeName) == "" {
		return &ValidationError{Reason: "cafe name is required"}
	}
	if settings.TaxRate < 0 || settings.TaxRate > 1 {
		return &ValidationError{Reason: "tax rate must be between 0 and 1"}
	}
	if settings.ServiceCharge < 0 || settings.ServiceCharge > 1 {
		return &ValidationError{Reason: "service charge rate must be between 0 and 1"}
	}

	guard := ss.Store.Guard(store.KeySettings)
	guard.Lock()
	defer guard.Unlock()

	if err := ss.Store.Save(store.KeySettings, settings); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Settings saved (cafe=%s tax=%.2f service=%.2f)",
		settings.CafeName, settings.TaxRate, settings.ServiceCharge)
	return nil
}
