package recommend

import (
	"github.com/shoprecs/shop-recs-backend/internal/catalog"
	"github.com/shoprecs/shop-recs-backend/internal/rating"
)

type Service struct {
	products catalog.Repository
	ratings  rating.Repository
}

func NewService(products catalog.Repository, ratings rating.Repository) *Service {
	return &Service{products: products, ratings: ratings}
}

// Recommend computes recommendations from the latest catalog and rating
// snapshots.
func (s *Service) Recommend(userID, query string, limit int) []Recommendation {
	return Recommend(s.products.List(), s.ratings.List(), userID, query, limit)
}
