package recommend

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
	app.Get("/api/recommendations", h.getRecommendations)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	userID := c.Query("userId")
	query := c.Query("q")

	limit := DefaultLimit
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil {
			limit = v
		}
	}

	return c.JSON(h.service.Recommend(userID, query, limit))
}
