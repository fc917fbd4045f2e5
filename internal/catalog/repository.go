package catalog

import "sync"

// Repository provides read access to the product catalog. The catalog is
// written only by ingestion (Reset); individual products are never mutated.
type Repository interface {
	List() []Product
	// Reset replaces the whole catalog with the provided list (used for dev /
	// seeding).
	Reset(products []Product) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Product, 0, len(products))
	r.storage = append(r.storage, products...)
	return nil
}
