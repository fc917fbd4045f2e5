package rating

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileRepository stores ratings as a single JSON file. Upsert is a
// read-modify-write of the whole file serialized by the repository mutex.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(dataDir string) *FileRepository {
	return &FileRepository{path: filepath.Join(dataDir, "ratings.json")}
}

func (r *FileRepository) List() []Rating {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *FileRepository) ListByUser(userID string) []Rating {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ByUser(r.read(), userID)
}

func (r *FileRepository) Upsert(rating Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(Upsert(r.read(), rating))
}

func (r *FileRepository) read() []Rating {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return []Rating{}
	}
	var ratings []Rating
	if err := json.Unmarshal(b, &ratings); err != nil {
		return []Rating{}
	}
	return ratings
}

func (r *FileRepository) write(ratings []Rating) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(ratings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}
