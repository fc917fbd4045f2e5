package search

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/search", h.search)
}

func (h *Handler) search(c *fiber.Ctx) error {
	query := c.Query("q")

	var minRating *float64
	if m := c.Query("minRating"); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			minRating = &v
		}
	}

	limit := DefaultLimit
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil {
			limit = v
		}
	}

	return c.JSON(h.service.Search(query, minRating, limit))
}
