package cart

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the session cart. Routes are public: the cart belongs to the
// browser session, not to an account.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.mutateCart)
}

type cartRequest struct {
	Action    string `json:"action" form:"action"`
	ProductID int    `json:"product_id" form:"product_id"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

func (h *Handler) mutateCart(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product_id"})
	}

	view, err := h.service.Apply(c, payload.Action, payload.ProductID, payload.Quantity)
	if err != nil {
		if err == ErrUnknownAction {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(view)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	view, err := h.service.View(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(view)
}
