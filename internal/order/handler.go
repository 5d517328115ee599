package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/snackshop/snack-shop-backend/internal/cart"
	"github.com/snackshop/snack-shop-backend/internal/user"
)

// UserGetter is the slice of the user service checkout needs: the customer
// email comes from the authenticated account.
type UserGetter interface {
	GetByID(id int) (user.User, error)
}

type Handler struct {
	service     *Service
	cartService *cart.Service
	users       UserGetter
}

func NewHandler(service *Service, cartService *cart.Service, users UserGetter) *Handler {
	return &Handler{service: service, cartService: cartService, users: users}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
}

// checkoutSummary mirrors the cart page's order summary block.
type checkoutSummary struct {
	Order    Order           `json:"order"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	u, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	view, err := h.cartService.View(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Checkout(view, u.Email)
	if err != nil {
		if err == ErrEmptyCart {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart cannot be empty"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	// a placed order empties the session cart
	_ = h.cartService.Clear(c)

	return c.Status(fiber.StatusCreated).JSON(checkoutSummary{
		Order:    created,
		Shipping: created.Shipping,
		Total:    created.Total,
	})
}
