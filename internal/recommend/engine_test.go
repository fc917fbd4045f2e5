package recommend

import (
	"math"
	"strings"
	"testing"

	"github.com/shoprecs/shop-recs-backend/internal/catalog"
	"github.com/shoprecs/shop-recs-backend/internal/rating"
)

func sampleCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Title: "Wireless Bluetooth Earbuds", Category: "Electronics", Rating: 4.5},
		{ID: "p2", Title: "Smart Speaker", Category: "Electronics", Rating: 4.0},
		{ID: "p3", Title: "Yoga Mat", Category: "Sports", Rating: 4.7},
		{ID: "p4", Title: "Bluetooth Speaker", Category: "Electronics", Rating: 3.8},
		{ID: "p5", Title: "Air Fryer", Category: "Kitchen", Rating: 4.2},
	}
}

func TestAnonymousReturnsPopular(t *testing.T) {
	recs := Recommend(sampleCatalog(), nil, "", "", 3)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Product.ID != "p3" {
		t.Fatalf("expected highest rated first, got %s", recs[0].Product.ID)
	}
	for _, r := range recs {
		if r.Reason != "Popular" {
			t.Fatalf("unexpected reason %q", r.Reason)
		}
		if r.Score != r.Product.Rating {
			t.Fatalf("anonymous score should equal rating, got %v vs %v", r.Score, r.Product.Rating)
		}
	}
}

func TestAnonymousWithQueryFiltersAndExplains(t *testing.T) {
	recs := Recommend(sampleCatalog(), nil, "", "bluetooth", 10)
	if len(recs) != 2 {
		t.Fatalf("expected 2 bluetooth matches, got %d", len(recs))
	}
	for _, r := range recs {
		if r.Reason != "Matches search query" {
			t.Fatalf("unexpected reason %q", r.Reason)
		}
	}
}

func TestColdStartRegimeBoundary(t *testing.T) {
	products := sampleCatalog()
	for _, n := range []int{0, 1, 2} {
		var ratings []rating.Rating
		for i := 0; i < n; i++ {
			ratings = append(ratings, rating.Rating{UserID: "u1", ProductID: products[i].ID, Rating: 5})
		}
		recs := Recommend(products, ratings, "u1", "", 10)
		if len(recs) == 0 {
			t.Fatalf("n=%d: expected recommendations", n)
		}
		for _, r := range recs {
			if r.Reason != "Popular (cold start)" {
				t.Fatalf("n=%d: unexpected reason %q", n, r.Reason)
			}
		}
	}

	// exactly 3 ratings switches to the warm regime
	ratings := []rating.Rating{
		{UserID: "u1", ProductID: "p1", Rating: 5},
		{UserID: "u1", ProductID: "p2", Rating: 4},
		{UserID: "u1", ProductID: "p3", Rating: 2},
	}
	recs := Recommend(products, ratings, "u1", "", 10)
	for _, r := range recs {
		if strings.Contains(r.Reason, "cold start") {
			t.Fatalf("expected warm regime at 3 ratings, got reason %q", r.Reason)
		}
	}
}

func TestColdStartWithQueryReason(t *testing.T) {
	ratings := []rating.Rating{{UserID: "u1", ProductID: "p9", Rating: 5}}
	recs := Recommend(sampleCatalog(), ratings, "u1", "speaker", 10)
	if len(recs) == 0 {
		t.Fatalf("expected recommendations")
	}
	for _, r := range recs {
		if r.Reason != "Matches search query (cold start)" {
			t.Fatalf("unexpected reason %q", r.Reason)
		}
	}
}

func TestExcludesAlreadyRatedProducts(t *testing.T) {
	ratings := []rating.Rating{
		{UserID: "u1", ProductID: "p3", Rating: 5},
		{UserID: "u2", ProductID: "p5", Rating: 5},
	}
	recs := Recommend(sampleCatalog(), ratings, "u1", "", 10)
	for _, r := range recs {
		if r.Product.ID == "p3" {
			t.Fatalf("rated product p3 must be excluded")
		}
		if r.Product.ID == "p5" {
			return // another user's rating must not exclude it
		}
	}
	t.Fatalf("p5 should still be recommended to u1")
}

func TestWarmCategoryAffinity(t *testing.T) {
	products := sampleCatalog()
	ratings := []rating.Rating{
		{UserID: "u1", ProductID: "p1", Rating: 5},
		{UserID: "u1", ProductID: "p2", Rating: 4},
		{UserID: "u1", ProductID: "p3", Rating: 2},
	}
	recs := Recommend(products, ratings, "u1", "", 10)

	var p5 *Recommendation
	for i := range recs {
		switch recs[i].Product.ID {
		case "p4":
			r := recs[i]
			if !strings.Contains(r.Reason, "Matches category you liked: Electronics") {
				t.Fatalf("expected category reason, got %q", r.Reason)
			}
			// rating + category bonus + title overlap with p1 ("bluetooth")
			// and p2 ("speaker")
			want := 3.8 + categoryBonus + 1*titleOverlapWeight
			if math.Abs(r.Score-want) > 1e-9 {
				t.Fatalf("p4 score = %v, want %v", r.Score, want)
			}
		case "p5":
			p5 = &recs[i]
		}
	}
	if p5 == nil {
		t.Fatalf("p5 missing from recommendations")
	}
	if p5.Reason != "High overall rating" {
		t.Fatalf("expected fallback reason for p5, got %q", p5.Reason)
	}
	if p5.Score != 4.2 {
		t.Fatalf("fallback score should be raw rating, got %v", p5.Score)
	}
}

func TestWarmTitleSimilarityPicksBestOverlap(t *testing.T) {
	products := []catalog.Product{
		{ID: "liked1", Title: "Wireless Bluetooth Earbuds", Category: "Electronics", Rating: 4.5},
		{ID: "liked2", Title: "Garden Hose", Category: "Garden", Rating: 4.1},
		{ID: "filler", Title: "Coffee Maker", Category: "Kitchen", Rating: 4.0},
		{ID: "cand", Title: "Wireless Bluetooth Speaker", Category: "Audio", Rating: 3.0},
	}
	ratings := []rating.Rating{
		{UserID: "u1", ProductID: "liked1", Rating: 5},
		{UserID: "u1", ProductID: "liked2", Rating: 4},
		{UserID: "u1", ProductID: "filler", Rating: 3},
	}
	recs := Recommend(products, ratings, "u1", "", 10)
	if len(recs) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(recs))
	}
	r := recs[0]
	if !strings.Contains(r.Reason, "Similar to products you liked: Wireless Bluetooth Earbuds") {
		t.Fatalf("expected similarity reason naming best overlap, got %q", r.Reason)
	}
	// overlap = {wireless, bluetooth} = 2 tokens
	want := 3.0 + 2*titleOverlapWeight
	if math.Abs(r.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", r.Score, want)
	}
}

func TestWarmQueryBonusAndJoinedReasons(t *testing.T) {
	products := []catalog.Product{
		{ID: "liked1", Title: "Smart Speaker", Category: "Electronics", Rating: 4.5},
		{ID: "liked2", Title: "Router", Category: "Electronics", Rating: 4.2},
		{ID: "liked3", Title: "Yoga Mat", Category: "Sports", Rating: 4.8},
		{ID: "cand", Title: "Bluetooth Speaker Pro", Category: "Electronics", Rating: 4.0},
	}
	ratings := []rating.Rating{
		{UserID: "u1", ProductID: "liked1", Rating: 5},
		{UserID: "u1", ProductID: "liked2", Rating: 4},
		{UserID: "u1", ProductID: "liked3", Rating: 4},
	}
	recs := Recommend(products, ratings, "u1", "speaker", 10)
	if len(recs) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(recs))
	}
	r := recs[0]
	wantReason := "Matches your search; Matches category you liked: Electronics; Similar to products you liked: Smart Speaker"
	if r.Reason != wantReason {
		t.Fatalf("reason = %q, want %q", r.Reason, wantReason)
	}
	want := 4.0 + queryMatchBonus + categoryBonus + 1*titleOverlapWeight
	if math.Abs(r.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", r.Score, want)
	}
}

func TestRecommendLimitClamp(t *testing.T) {
	if got := Recommend(sampleCatalog(), nil, "", "", 0); len(got) != 1 {
		t.Fatalf("expected limit clamped to 1, got %d", len(got))
	}
	if got := Recommend(sampleCatalog(), nil, "", "", 2); len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
}
