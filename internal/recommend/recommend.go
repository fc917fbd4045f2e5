package recommend

import "github.com/shoprecs/shop-recs-backend/internal/catalog"

// Recommendation pairs a product with its recommendation score and a
// human-readable explanation of why it was picked. Recommendations are
// derived views: never persisted, recomputed from the current catalog and
// rating snapshots on every request.
type Recommendation struct {
	Product catalog.Product `json:"product"`
	Score   float64         `json:"score"`
	Reason  string          `json:"reason"`
}
