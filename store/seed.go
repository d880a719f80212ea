package store

import (
	"os"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

func defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyMenu:     models.DefaultMenu(),
		KeyOrders:   []models.Order{},
		KeyTables:   models.DefaultTables(),
		KeySettings: models.DefaultSettings(),
		KeyUsers:    models.DefaultUsers(),
	}
}

// Seed writes the default content for every document that does not exist
// yet. Existing documents are left alone.
func (fs *FileStore) Seed() error {
	for key, value := range defaults() {
		path, err := fs.path(key)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := fs.Save(key, value); err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded default %s document", key)
	}
	return nil
}

// Reset unconditionally restores every document to its default content.
func (fs *FileStore) Reset() error {
	for key, value := range defaults() {
		if err := fs.Save(key, value); err != nil {
			return err
		}
	}
	utils.InfoLogger.Println("All documents reset to defaults")
	return nil
}
