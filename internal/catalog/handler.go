package catalog

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)

	// dev-only endpoint to reset the catalog — enabled when ALLOW_RESET_PRODUCTS=1
	app.Post("/dev/reset-products", h.resetProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products := h.service.List()
	return c.JSON(products)
}

// resetProducts replaces the catalog with the provided list (or a default
// sample list when the body cannot be parsed). An empty array clears the
// catalog without re-seeding.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_PRODUCTS") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var products []Product
	if err := c.BodyParser(&products); err != nil {
		products = SampleProducts()
	}

	if err := h.service.ResetProducts(products); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	return c.JSON(products)
}

// SampleProducts returns a tiny default catalog used when resetting without a
// body and as seed data in local scenarios.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			ASIN:        "ASIN000001",
			Title:       "Wireless Bluetooth Earbuds Model 4210",
			Category:    "Electronics",
			Price:       59.99,
			Rating:      4.5,
			ReviewCount: 1000,
			Description: "Wireless Bluetooth Earbuds designed for electronics use. Model 4210 offers reliable performance and solid value.",
			Tags:        []string{"wireless", "bluetooth", "earbuds", "electronics"},
			AmazonLink:  "https://www.amazon.com/dp/ASIN000001",
		},
		{
			ID:          "p2",
			ASIN:        "ASIN000002",
			Title:       "Compact Air Fryer Model 300",
			Category:    "Kitchen",
			Price:       89.99,
			Rating:      4.2,
			ReviewCount: 3500,
			Description: "Compact Air Fryer designed for kitchen use. Model 300 offers reliable performance and solid value.",
			Tags:        []string{"compact", "air", "fryer", "kitchen"},
			AmazonLink:  "https://www.amazon.com/dp/ASIN000002",
		},
		{
			ID:          "p3",
			ASIN:        "ASIN000003",
			Title:       "Premium Yoga Mat Model 77",
			Category:    "Sports",
			Price:       24.99,
			Rating:      4.7,
			ReviewCount: 800,
			Description: "Premium Yoga Mat designed for sports use. Model 77 offers reliable performance and solid value.",
			Tags:        []string{"premium", "yoga", "mat", "sports"},
			AmazonLink:  "https://www.amazon.com/dp/ASIN000003",
		},
		{
			ID:          "p4",
			ASIN:        "ASIN000004",
			Title:       "Smart Speaker Model 950",
			Category:    "Electronics",
			Price:       129.99,
			Rating:      4.0,
			ReviewCount: 5200,
			Description: "Smart Speaker designed for electronics use. Model 950 offers reliable performance and solid value.",
			Tags:        []string{"smart", "speaker", "electronics"},
			AmazonLink:  "https://www.amazon.com/dp/ASIN000004",
		},
	}
}
