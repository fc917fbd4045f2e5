// Package search ranks catalog products against a free-text query. Scoring
// is additive: exact and substring matches on individual fields contribute
// fixed point values, whole-word token hits contribute smaller per-field
// values, and product popularity adds a small nudge so zero-relevance items
// still order sensibly.
package search

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shoprecs/shop-recs-backend/internal/catalog"
)

// Relevance weights. These are tuned constants the stored data and clients
// depend on; changing them changes result ordering across the board.
const (
	exactScore    = 200
	asinScore     = 80
	titleScore    = 60
	tagsScore     = 50
	categoryScore = 40
	descScore     = 30

	titleTokenScore    = 12
	tagsTokenScore     = 10
	categoryTokenScore = 8
	descTokenScore     = 6
)

// DefaultLimit caps search results when the caller does not ask for a count.
const DefaultLimit = 50

// Matches reports whether the query appears as a case-insensitive substring
// in any of the product's searchable fields. An empty (or all-whitespace)
// query matches every product. This predicate is deliberately looser than
// Score: it is the cheap filter used for recommendation candidates.
func Matches(p catalog.Product, query string) bool {
	q := normalize(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.ASIN), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Score computes the relevance of a product for a query. With an empty query
// the score is just the product rating.
func Score(p catalog.Product, query string) float64 {
	q := normalize(query)
	if q == "" {
		return p.Rating
	}
	return newScorer(q).score(p)
}

// Search ranks products by relevance to the query, drops products rated
// below minRating when given (inclusive floor), and returns at most limit
// results. The input slice is not mutated.
func Search(products []catalog.Product, query string, minRating *float64, limit int) []catalog.Product {
	if limit < 1 {
		limit = 1
	}
	q := normalize(query)
	candidates := filterMinRating(products, minRating)

	// No query: order purely by rating.
	if q == "" {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Rating > candidates[j].Rating
		})
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}
		return candidates
	}

	sc := newScorer(q)
	type scored struct {
		product catalog.Product
		score   float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, p := range candidates {
		ranked = append(ranked, scored{product: p, score: sc.score(p)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].product.Rating > ranked[j].product.Rating
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]catalog.Product, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.product)
	}
	return out
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func filterMinRating(products []catalog.Product, minRating *float64) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if minRating != nil && p.Rating < *minRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// scorer holds the normalized query and one compiled word-boundary pattern
// per query token so a whole catalog can be scored without recompiling.
type scorer struct {
	query  string
	tokens []*regexp.Regexp
}

func newScorer(q string) *scorer {
	s := &scorer{query: q}
	for _, tok := range strings.Fields(q) {
		// tokens are matched literally; regex metacharacters must not leak
		s.tokens = append(s.tokens, regexp.MustCompile(`\b`+regexp.QuoteMeta(tok)+`\b`))
	}
	return s
}

func (s *scorer) score(p catalog.Product) float64 {
	title := strings.ToLower(p.Title)
	category := strings.ToLower(p.Category)
	desc := strings.ToLower(p.Description)
	asin := strings.ToLower(p.ASIN)
	tags := strings.ToLower(strings.Join(p.Tags, " "))

	var score float64

	// exact matches get highest priority
	if title == s.query || category == s.query || asin == s.query {
		score += exactScore
	}

	if strings.Contains(asin, s.query) {
		score += asinScore
	}

	// phrase matches
	if strings.Contains(title, s.query) {
		score += titleScore
	}
	if strings.Contains(tags, s.query) {
		score += tagsScore
	}
	if strings.Contains(category, s.query) {
		score += categoryScore
	}
	if strings.Contains(desc, s.query) {
		score += descScore
	}

	// whole-word token hits add relevance but less than phrase/exact,
	// counted at most once per field
	for _, re := range s.tokens {
		if re.MatchString(title) {
			score += titleTokenScore
		}
		if re.MatchString(category) {
			score += categoryTokenScore
		}
		if re.MatchString(tags) {
			score += tagsTokenScore
		}
		if re.MatchString(desc) {
			score += descTokenScore
		}
	}

	// small popularity contribution from rating and review count
	score += p.Rating / 5 * 5
	score += math.Log10(float64(p.ReviewCount)+1) * 2

	return score
}
