package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/snackshop/snack-shop-backend/internal/catalog"
	"github.com/snackshop/snack-shop-backend/internal/config"
	"github.com/snackshop/snack-shop-backend/internal/feedback"
	"github.com/snackshop/snack-shop-backend/internal/forum"
	"github.com/snackshop/snack-shop-backend/internal/order"
	"github.com/snackshop/snack-shop-backend/internal/recruit"
	"github.com/snackshop/snack-shop-backend/internal/user"
)

// Handler is the admin dashboard surface: catalog CRUD, moderation over
// posts, comments and orders, the feedback and applicant lists, and raw JSON
// data file management.
type Handler struct {
	cfg      config.Config
	catalog  *catalog.Service
	forum    *forum.Service
	orders   *order.Service
	feedback *feedback.Service
	recruit  *recruit.Service
	files    *FileManager
}

func NewHandler(cfg config.Config, catalogSvc *catalog.Service, forumSvc *forum.Service, orderSvc *order.Service, feedbackSvc *feedback.Service, recruitSvc *recruit.Service, files *FileManager) *Handler {
	return &Handler{
		cfg:      cfg,
		catalog:  catalogSvc,
		forum:    forumSvc,
		orders:   orderSvc,
		feedback: feedbackSvc,
		recruit:  recruitSvc,
		files:    files,
	}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/sign-in", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	grp := app.Group("/api/v1/admin", requireAdmin)

	grp.Post("/products", h.createProduct)
	grp.Put("/product/:id", h.updateProduct)
	grp.Delete("/product/:id", h.deleteProduct)

	grp.Delete("/post/:id", h.deletePost)
	grp.Delete("/comment/:id", h.deleteComment)

	grp.Get("/orders", h.getOrders)
	grp.Delete("/order/:id", h.deleteOrder)

	grp.Get("/feedback", h.getFeedback)
	grp.Get("/applications", h.getApplications)

	grp.Get("/files", h.listFiles)
	grp.Get("/file/:name", h.readFile)
	grp.Put("/file/:name", h.writeFile)
	grp.Delete("/file/:name", h.deleteFile)
}

// requireAdmin sits behind the JWT middleware and rejects tokens without the
// admin flag.
func requireAdmin(c *fiber.Ctx) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin access required"})
	}
	return c.Next()
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// login checks the static admin credential from the environment and issues an
// admin token.
func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if h.cfg.AdminPassword == "" ||
		payload.Username != h.cfg.AdminUsername ||
		payload.Password != h.cfg.AdminPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid admin credentials"})
	}

	signed, err := user.SignToken(0, payload.Username, true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.JSON(fiber.Map{"message": "Login successful", "token": signed})
}

// ---- catalog CRUD ---------------------------------------------------------

func validateProductPayload(p *catalog.Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(catalog.Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	p.ID = 0 // id assignment belongs to the store
	created, err := h.catalog.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p := new(catalog.Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.catalog.Update(id, *p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.catalog.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.SendString("Product deleted")
}

// ---- moderation -----------------------------------------------------------

func (h *Handler) deletePost(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid post id."})
	}
	if err := h.forum.DeletePost(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unable to delete post."})
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *Handler) deleteComment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid comment id."})
	}
	if err := h.forum.DeleteComment(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unable to delete comment."})
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	orders, err := h.orders.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order id."})
	}
	if err := h.orders.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unable to delete order."})
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

func (h *Handler) getFeedback(c *fiber.Ctx) error {
	items, err := h.feedback.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getApplications(c *fiber.Ctx) error {
	apps, err := h.recruit.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(apps)
}

// ---- data file management -------------------------------------------------

func (h *Handler) listFiles(c *fiber.Ctx) error {
	return c.JSON(h.files.ListFiles())
}

func (h *Handler) readFile(c *fiber.Ctx) error {
	content, err := h.files.ReadFile(c.Params("name"))
	if err != nil {
		if err == ErrFileNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	c.Set("Content-Type", "application/json")
	return c.Send(content)
}

func (h *Handler) writeFile(c *fiber.Ctx) error {
	if err := h.files.WriteFile(c.Params("name"), c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "File saved"})
}

func (h *Handler) deleteFile(c *fiber.Ctx) error {
	if err := h.files.DeleteFile(c.Params("name")); err != nil {
		if err == ErrFileNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "File deleted"})
}
