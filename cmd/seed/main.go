// Command seed writes a synthetic product catalog (and optionally a small
// demo rating history) as JSON files the API server can serve directly.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shoprecs/shop-recs-backend/internal/catalog"
	"github.com/shoprecs/shop-recs-backend/internal/rating"
)

var categories = []string{
	"Electronics", "Kitchen", "Home", "Apparel", "Sports",
	"Beauty", "Toys", "Books", "Automotive", "Garden",
}

var nouns = map[string][]string{
	"Electronics": {"Headphones", "Speaker", "Camera", "Smartphone", "Charger", "Bluetooth Earbuds", "Monitor", "Keyboard", "Mouse", "Router"},
	"Kitchen":     {"Pressure Cooker", "Rice Cooker", "Air Fryer", "Blender", "Coffee Maker", "Cookware Set", "Skillet", "Dutch Oven", "Toaster", "Microwave"},
	"Home":        {"Throw Pillow", "Bed Sheets", "Lamp", "Vacuum Cleaner", "Water Dispenser", "Curtains", "Rug", "Storage Box", "Hanging Shelf", "Wall Clock"},
	"Apparel":     {"Running Shoes", "Jacket", "T-Shirt", "Jeans", "Socks", "Backpack", "Hat", "Sweater", "Dress", "Shorts"},
	"Sports":      {"Yoga Mat", "Dumbbell Set", "Tennis Racket", "Football", "Basketball", "Cycling Helmet", "Running Belt", "Resistance Bands", "Jump Rope", "Golf Gloves"},
	"Beauty":      {"Facial Cleanser", "Moisturizer", "Shampoo", "Conditioner", "Hair Dryer", "Makeup Kit", "Perfume", "Sunscreen", "Face Mask", "Nail Kit"},
	"Toys":        {"Building Blocks", "Board Game", "Action Figure", "Doll", "Puzzle", "Remote Car", "Plush Toy", "Learning Tablet", "Kaleidoscope", "Science Kit"},
	"Books":       {"Mystery Novel", "Science Fiction", "Self-Help Guide", "Cookbook", "Children Book", "Biography", "Business Book", "Romance Novel", "History Book", "Travel Guide"},
	"Automotive":  {"Car Charger", "Car Vacuum", "Dash Cam", "Tire Inflator", "Seat Cover", "Car Freshener", "Jump Starter", "Engine Oil", "Wiper Blades", "Battery Conditioner"},
	"Garden":      {"Garden Hose", "Pruner", "Planter Pots", "Lawn Mower", "Garden Gloves", "Fertilizer", "Compost Bin", "Outdoor Lights", "Garden Fork", "Watering Can"},
}

var adjectives = []string{
	"Advanced", "Portable", "Premium", "Eco", "Smart", "Wireless", "Compact",
	"Deluxe", "Ultra", "Classic", "Pro", "Essential", "Multi", "Performance", "Quick",
}

func main() {
	out := flag.String("out", "./data", "directory to write products.json / ratings.json into")
	count := flag.Int("count", 500, "number of synthetic products to generate")
	demoRatings := flag.Int("demo-ratings", 0, "also write ratings.json with this many demo ratings for a generated user")
	seed := flag.Int64("seed", 0, "random seed (0 = non-deterministic)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	products := generate(rng, *count)
	if err := writeJSON(filepath.Join(*out, "products.json"), products); err != nil {
		log.Fatalf("write products: %v", err)
	}
	log.Printf("wrote %d products to %s", len(products), filepath.Join(*out, "products.json"))

	if *demoRatings > 0 && len(products) > 0 {
		ratings := demo(rng, products, *demoRatings)
		if err := writeJSON(filepath.Join(*out, "ratings.json"), ratings); err != nil {
			log.Fatalf("write ratings: %v", err)
		}
		log.Printf("wrote %d demo ratings for user %s", len(ratings), ratings[0].UserID)
	}
}

func generate(rng *rand.Rand, total int) []catalog.Product {
	products := make([]catalog.Product, 0, total)
	for i := 1; i <= total; i++ {
		category := categories[i%len(categories)]
		nounList := nouns[category]
		noun := nounList[i%len(nounList)]
		adj := adjectives[i%len(adjectives)]
		model := 100 + rng.Intn(9900)

		title := fmt.Sprintf("%s %s Model %d", adj, noun, model)
		asin := fmt.Sprintf("ASIN%06d", i)
		description := fmt.Sprintf("%s %s designed for %s use. Model %d offers reliable performance and solid value.",
			adj, noun, strings.ToLower(category), model)

		products = append(products, catalog.Product{
			ID:          fmt.Sprintf("p%d", i),
			ASIN:        asin,
			Title:       title,
			Category:    category,
			Price:       round2(9.99 + rng.Float64()*(499.99-9.99)),
			Rating:      round1(3.4 + rng.Float64()*(5.0-3.4)),
			ReviewCount: rng.Intn(15000),
			ImageURL:    "https://via.placeholder.com/400x300?text=" + url.QueryEscape(noun),
			Description: description,
			Tags:        buildTags(title, category, noun, adj),
			AmazonLink:  "https://www.amazon.com/dp/" + asin,
		})
	}
	return products
}

// buildTags derives deduplicated lower-case tags from the title and category
// tokens, preserving first-seen order.
func buildTags(title, category, noun, adj string) []string {
	seen := map[string]bool{}
	tags := make([]string, 0, 8)
	add := func(words []string) {
		for _, w := range words {
			if w != "" && !seen[w] {
				seen[w] = true
				tags = append(tags, w)
			}
		}
	}
	add(tokenize(title))
	add(tokenize(category))
	add(tokenize(noun))
	add([]string{strings.ToLower(adj)})
	return tags
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
}

// demo rates the first n products for a freshly generated user, mostly high
// values so the warm recommendation path has liked products to work with.
func demo(rng *rand.Rand, products []catalog.Product, n int) []rating.Rating {
	if n > len(products) {
		n = len(products)
	}
	userID := uuid.NewString()
	ratings := make([]rating.Rating, 0, n)
	for i := 0; i < n; i++ {
		ratings = append(ratings, rating.Rating{
			UserID:    userID,
			ProductID: products[i].ID,
			Rating:    float64(3 + rng.Intn(3)),
		})
	}
	return ratings
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func round1(f float64) float64 { return float64(int(f*10+0.5)) / 10 }
func round2(f float64) float64 { return float64(int(f*100+0.5)) / 100 }
