package forum

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snackshop/snack-shop-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/forum", h.getThreads)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/forum", h.mutateForum)
}

type forumRequest struct {
	Action    string `json:"action" form:"action"`
	Content   string `json:"content" form:"content"`
	Comment   string `json:"comment" form:"comment"`
	PostID    int    `json:"post_id" form:"post_id"`
	CommentID int    `json:"comment_id" form:"comment_id"`
}

func (h *Handler) getThreads(c *fiber.Ctx) error {
	threads, err := h.service.Threads()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(threads)
}

func (h *Handler) mutateForum(c *fiber.Ctx) error {
	payload := new(forumRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	author, err := user.UsernameFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	switch payload.Action {
	case "new_post":
		return h.newPost(c, author, payload)
	case "add_comment":
		return h.addComment(c, author, payload)
	case "delete_post":
		return h.deletePost(c, payload)
	case "delete_comment":
		return h.deleteComment(c, payload)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown action"})
	}
}

func (h *Handler) newPost(c *fiber.Ctx, author string, payload *forumRequest) error {
	post, err := h.service.NewPost(author, payload.Content)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please provide content for your comment."})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *Handler) addComment(c *fiber.Ctx, author string, payload *forumRequest) error {
	content := payload.Comment
	if content == "" {
		content = payload.Content
	}
	comment, err := h.service.AddComment(author, payload.PostID, content)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please provide a valid comment."})
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *Handler) deletePost(c *fiber.Ctx, payload *forumRequest) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "You do not have permission to delete this post."})
	}
	if err := h.service.DeletePost(payload.PostID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unable to delete post."})
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *Handler) deleteComment(c *fiber.Ctx, payload *forumRequest) error {
	if !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "You do not have permission to delete this comment."})
	}
	if err := h.service.DeleteComment(payload.CommentID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Unable to delete comment."})
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
