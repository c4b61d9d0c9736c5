package handlers

import (
	"net/url"

	applog "candleworks/internal/log"
	"candleworks/internal/services"
	"candleworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	names, err := h.Catalog.Categories()
	if err != nil {
		return fail(c, "categories.list", err)
	}
	return c.JSON(names)
}

// POST /api/categories (admin)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "category name is required")
	}
	cat, err := h.Catalog.AddCategory(name)
	if err != nil {
		return fail(c, "categories.create", err)
	}
	applog.Audit(c, "categories.create", map[string]any{"name": cat.Name})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// DELETE /api/categories/:name (admin)
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badRequest(c, "category name is required")
	}
	name, ok := validate.Name(raw)
	if !ok {
		return badRequest(c, "category name is required")
	}
	if err := h.Catalog.DeleteCategory(name); err != nil {
		return fail(c, "categories.delete", err)
	}
	applog.Audit(c, "categories.delete", map[string]any{"name": name})
	return c.JSON(fiber.Map{"message": "category deleted"})
}
