package rating

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/ratings", h.getRatings)
	app.Post("/api/ratings", h.postRating)
}

func (h *Handler) getRatings(c *fiber.Ctx) error {
	if userID := c.Query("userId"); userID != "" {
		return c.JSON(h.service.ListByUser(userID))
	}
	return c.JSON(h.service.List())
}

// submitPayload uses a pointer for the rating value so a missing field can be
// told apart from an explicit zero.
type submitPayload struct {
	UserID     string   `json:"user_id"`
	ProductID  string   `json:"product_id"`
	Rating     *float64 `json:"rating"`
	ReviewText string   `json:"review_text"`
}

func validateSubmitPayload(p *submitPayload) map[string]string {
	errs := map[string]string{}
	if p.UserID == "" {
		errs["user_id"] = "user_id is required"
	}
	if p.ProductID == "" {
		errs["product_id"] = "product_id is required"
	}
	if p.Rating == nil {
		errs["rating"] = "rating must be a number"
	}
	return errs
}

func (h *Handler) postRating(c *fiber.Ctx) error {
	p := new(submitPayload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// validate payload and return all validation errors together
	if ves := validateSubmitPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	r := Rating{
		UserID:     p.UserID,
		ProductID:  p.ProductID,
		Rating:     *p.Rating,
		ReviewText: p.ReviewText,
	}
	if err := h.service.Submit(r); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
