package search

import "github.com/shoprecs/shop-recs-backend/internal/catalog"

type Service struct {
	products catalog.Repository
}

func NewService(products catalog.Repository) *Service {
	return &Service{products: products}
}

// Search ranks the current catalog snapshot against the query. Scores are
// recomputed on every call; nothing is cached between requests.
func (s *Service) Search(query string, minRating *float64, limit int) []catalog.Product {
	return Search(s.products.List(), query, minRating, limit)
}
