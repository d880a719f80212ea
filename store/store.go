package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yeremiapane/cafe-pos/utils"
)

// Document keys. One JSON file per key.
const (
	KeyMenu     = "menu"
	KeyOrders   = "orders"
	KeyTables   = "tables"
	KeySettings = "settings"
	KeyUsers    = "users"
)

var fileNames = map[string]string{
	KeyMenu:     "menu_data.json",
	KeyOrders:   "orders_data.json",
	KeyTables:   "tables_data.json",
	KeySettings: "settings.json",
	KeyUsers:    "users_data.json",
}

// Keys lists every document key the store manages.
func Keys() []string {
	return []string{KeyMenu, KeyOrders, KeyTables, KeySettings, KeyUsers}
}

// Store is keyed whole-document persistence. Load and Save read or replace
// an entire document; Guard exposes the per-document lock so callers can
// hold it across a full read-modify-write sequence.
type Store interface {
	Load(key string, v interface{}) error
	Save(key string, v interface{}) error
	Export(key string) ([]byte, error)
	Guard(key string) *sync.Mutex
}

// FileStore keeps each document as an indented JSON file in a data
// directory. Saves go through a temp file and rename.
type FileStore struct {
	dir    string
	guards map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	guards := make(map[string]*sync.Mutex, len(fileNames))
	for key := range fileNames {
		guards[key] = &sync.Mutex{}
	}
	return &FileStore{dir: dir, guards: guards}, nil
}

func (fs *FileStore) path(key string) (string, error) {
	name, ok := fileNames[key]
	if !ok {
		return "", fmt.Errorf("unknown document key %q", key)
	}
	return filepath.Join(fs.dir, name), nil
}

// Guard returns the mutex protecting one document. Callers doing
// read-modify-write must hold it for the whole sequence.
func (fs *FileStore) Guard(key string) *sync.Mutex {
	return fs.guards[key]
}

// Load reads a document into v. A missing or unreadable file is treated the
// same as an empty document: v is left at its zero/default value and no
// error is returned.
func (fs *FileStore) Load(key string, v interface{}) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.ErrorLogger.Printf("Reading %s: %v (treating as empty)", path, err)
		}
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		utils.ErrorLogger.Printf("Parsing %s: %v (treating as empty)", path, err)
		return nil
	}
	return nil
}

// Save replaces a document with v.
func (fs *FileStore) Save(key string, v interface{}) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}

// Export returns a document's JSON text as stored, for download. A missing
// document exports as its empty JSON form.
func (fs *FileStore) Export(key string) ([]byte, error) {
	path, err := fs.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte("null"), nil
		}
		return nil, fmt.Errorf("export %s: %w", key, err)
	}
	return data, nil
}
