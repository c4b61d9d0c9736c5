package handlers

import (
	"candleworks/internal/domain"
	applog "candleworks/internal/log"
	"candleworks/internal/services"
	"candleworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type MarketingHandler struct {
	Marketing *services.MarketingService
}

// POST /api/newsletter
func (h *MarketingHandler) Subscribe(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	if err := h.Marketing.Subscribe(email); err != nil {
		return fail(c, "newsletter.subscribe", err)
	}
	applog.Info(c, "newsletter.subscribe", nil)
	return c.JSON(fiber.Map{"message": "successfully subscribed to newsletter"})
}

// POST /api/contact
func (h *MarketingHandler) Contact(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Mobile  string `json:"mobile"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name is required")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	if req.Message == "" {
		return badRequest(c, "message is required")
	}
	err := h.Marketing.Contact(domain.ContactMessage{
		Name: name, Email: email, Mobile: req.Mobile, Message: req.Message,
	})
	if err != nil {
		return fail(c, "contact.send", err)
	}
	applog.Info(c, "contact.send", nil)
	return c.JSON(fiber.Map{"message": "message sent successfully"})
}
