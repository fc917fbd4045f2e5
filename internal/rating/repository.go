package rating

import "sync"

// Repository provides access to rating storage. Upsert must be serialized by
// the implementation so concurrent submissions for the same (user, product)
// pair resolve to exactly one winning write.
type Repository interface {
	List() []Rating
	ListByUser(userID string) []Rating
	Upsert(r Rating) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Rating
}

func NewInMemoryRepository(seed []Rating) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Rating, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Rating {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rating, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) ListByUser(userID string) []Rating {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ByUser(r.storage, userID)
}

func (r *InMemoryRepository) Upsert(rating Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = Upsert(r.storage, rating)
	return nil
}
