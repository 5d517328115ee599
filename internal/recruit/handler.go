package recruit

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service    *Service
	uploadsDir string
}

func NewHandler(service *Service, uploadsDir string) *Handler {
	return &Handler{service: service, uploadsDir: uploadsDir}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/recruit", h.apply)
}

func (h *Handler) apply(c *fiber.Ctx) error {
	positionID, _ := strconv.Atoi(c.FormValue("position"))
	app := Application{
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		PositionID: positionID,
		Motivation: c.FormValue("motivation"),
	}

	// the resume upload is optional
	if file, err := c.FormFile("file"); err == nil && file != nil {
		if !AllowedResume(file.Filename) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrBadResumeType.Error()})
		}
		name := fmt.Sprintf("resume_%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
		dest := filepath.Join(h.uploadsDir, name)
		if err := c.SaveFile(file, dest); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		app.FilePath = "/uploads/" + name
	}

	saved, err := h.service.Submit(app)
	if err != nil {
		switch err {
		case ErrMissingFields, ErrInvalidEmail:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}
