package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
)

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	fs := newTestStore(t)
	ss := NewSettingsService(fs)

	settings := ss.Settings()
	assert.Equal(t, "My Cafe", settings.CafeName)
	assert.Equal(t, 0.10, settings.TaxRate)
	assert.Equal(t, 0.05, settings.ServiceCharge)
}

func TestSettingsSaveRoundtrip(t *testing.T) {
	fs := newTestStore(t)
	ss := NewSettingsService(fs)

	saved := models.Settings{
		CafeName:      "Corner Cafe",
		MenuURL:       "https://corner.example/menu",
		TaxRate:       0.08,
		ServiceCharge: 0.0,
	}
	assert.NoError(t, ss.Save(saved))
	assert.Equal(t, saved, ss.Settings())
}

func TestSettingsSaveValidation(t *testing.T) {
	fs := newTestStore(t)
	ss := NewSettingsService(fs)

	var validation *ValidationError
	assert.ErrorAs(t, ss.Save(models.Settings{CafeName: " "}), &validation)
	assert.ErrorAs(t, ss.Save(models.Settings{CafeName: "X", TaxRate: 1.5}), &validation)
	assert.ErrorAs(t, ss.Save(models.Settings{CafeName: "X", ServiceCharge: -0.1}), &validation)
}
