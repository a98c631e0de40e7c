package handler

import "github.com/gofiber/fiber/v3"

const livenessMessage = "Interest-based matchmaker API is running."

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Live)
}

func (h *RootHandler) Live(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": livenessMessage})
}
