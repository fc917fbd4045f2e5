package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileRepository stores the catalog as a single JSON file. Every List
// re-reads the file so callers always rank against the latest snapshot;
// a missing or corrupt file yields an empty catalog rather than an error.
type FileRepository struct {
	mu   sync.RWMutex
	path string
}

func NewFileRepository(dataDir string) *FileRepository {
	return &FileRepository{path: filepath.Join(dataDir, "products.json")}
}

func (r *FileRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		return []Product{}
	}
	var products []Product
	if err := json.Unmarshal(b, &products); err != nil {
		return []Product{}
	}
	return products
}

func (r *FileRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}
