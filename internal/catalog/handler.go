package catalog

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
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/best-sellers", h.getBestSellers)
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/product/:id", h.getProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	criteria := Criteria{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		MinPrice: parsePrice(c.Query("min_price")),
		MaxPrice: parsePrice(c.Query("max_price")),
	}
	return c.JSON(h.service.Browse(criteria, c.Query("sort")))
}

func (h *Handler) getBestSellers(c *fiber.Ctx) error {
	limit := 4
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return c.JSON(h.service.BestSellers(limit))
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

// parsePrice turns a query value into a price bound; anything non-numeric
// leaves that side unconstrained.
func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
