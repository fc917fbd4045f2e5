// Package recommend produces personalized product recommendations by
// blending query relevance, rating-based popularity, category affinity, and
// title similarity to products the user previously liked.
package recommend

import (
	"sort"
	"strings"

	"github.com/shoprecs/shop-recs-backend/internal/catalog"
	"github.com/shoprecs/shop-recs-backend/internal/rating"
	"github.com/shoprecs/shop-recs-backend/internal/search"
)

const (
	// users with fewer ratings than this get cold-start recommendations
	coldStartThreshold = 3
	// ratings at or above this value count as "liked"
	likedThreshold = 4

	queryMatchBonus    = 1.5
	categoryBonus      = 2.0
	titleOverlapWeight = 0.5
)

// DefaultLimit caps recommendations when the caller does not ask for a count.
const DefaultLimit = 6

// Recommend ranks up to limit candidate products for a user. Three regimes,
// selected per request by the size of the user's rating history:
//
//	anonymous  — no user id: popular (or query-matching) products by rating
//	cold start — fewer than 3 ratings: same, minus already-rated products
//	warm       — 3+ ratings: hybrid scoring with affinity signals
//
// Inputs are treated as immutable snapshots; nothing is cached across calls.
func Recommend(products []catalog.Product, ratings []rating.Rating, userID, query string, limit int) []Recommendation {
	if limit < 1 {
		limit = 1
	}
	hasQuery := strings.TrimSpace(query) != ""

	base := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if search.Matches(p, query) {
			base = append(base, p)
		}
	}

	if userID == "" {
		reason := "Popular"
		if hasQuery {
			reason = "Matches search query"
		}
		return topByRating(base, limit, reason)
	}

	userRatings := rating.ByUser(ratings, userID)

	// exclude products the user already rated
	ratedIDs := make(map[string]bool, len(userRatings))
	for _, r := range userRatings {
		ratedIDs[r.ProductID] = true
	}
	candidates := make([]catalog.Product, 0, len(base))
	for _, p := range base {
		if !ratedIDs[p.ID] {
			candidates = append(candidates, p)
		}
	}

	if len(userRatings) < coldStartThreshold {
		reason := "Popular (cold start)"
		if hasQuery {
			reason = "Matches search query (cold start)"
		}
		return topByRating(candidates, limit, reason)
	}

	// build user preference signals from highly rated products
	likedIDs := make(map[string]bool)
	for _, r := range userRatings {
		if r.Rating >= likedThreshold {
			likedIDs[r.ProductID] = true
		}
	}
	likedProducts := make([]catalog.Product, 0, len(likedIDs))
	likedCategories := make(map[string]bool)
	for _, p := range products {
		if likedIDs[p.ID] {
			likedProducts = append(likedProducts, p)
			likedCategories[p.Category] = true
		}
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, p := range candidates {
		score := p.Rating
		var reasons []string

		if hasQuery && search.Matches(p, query) {
			score += queryMatchBonus
			reasons = append(reasons, "Matches your search")
		}

		if likedCategories[p.Category] {
			score += categoryBonus
			reasons = append(reasons, "Matches category you liked: "+p.Category)
		}

		// title similarity to the closest liked product; ties keep the
		// first one found
		bestOverlap := 0
		var bestLiked catalog.Product
		for _, lp := range likedProducts {
			if ov := titleOverlap(p.Title, lp.Title); ov > bestOverlap {
				bestOverlap = ov
				bestLiked = lp
			}
		}
		if bestOverlap > 0 {
			score += float64(bestOverlap) * titleOverlapWeight
			reasons = append(reasons, "Similar to products you liked: "+bestLiked.Title)
		}

		if len(reasons) == 0 {
			reasons = append(reasons, "High overall rating")
		}

		recs = append(recs, Recommendation{
			Product: p,
			Score:   score,
			Reason:  strings.Join(reasons, "; "),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Product.Rating > recs[j].Product.Rating
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func topByRating(products []catalog.Product, limit int, reason string) []Recommendation {
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]Recommendation, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, Recommendation{Product: p, Score: p.Rating, Reason: reason})
	}
	return out
}

// titleOverlap counts distinct normalized tokens shared by two titles.
func titleOverlap(a, b string) int {
	at := titleTokens(a)
	bt := titleTokens(b)
	n := 0
	for t := range at {
		if bt[t] {
			n++
		}
	}
	return n
}

// titleTokens lower-cases a title and splits it on runs of characters
// outside [a-z0-9], returning the deduplicated token set.
func titleTokens(s string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	set := make(map[string]bool, len(fields))
	for _, t := range fields {
		set[t] = true
	}
	return set
}
