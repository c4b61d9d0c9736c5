package handlers

import (
	applog "candleworks/internal/log"
	"candleworks/internal/services"
	"candleworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

// GET /api/cart
func (h *CartHandler) List(c *fiber.Ctx) error {
	cv, err := h.Cart.List(currentUser(c))
	if err != nil {
		return fail(c, "cart.list", err)
	}
	return c.JSON(cv)
}

type cartAddReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// POST /api/cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req cartAddReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	pid, ok := validate.ID(req.ProductID)
	if !ok {
		return badRequest(c, "invalid product id")
	}
	it, err := h.Cart.Add(currentUser(c), pid, req.Quantity)
	if err != nil {
		return fail(c, "cart.add", err)
	}
	applog.Info(c, "cart.add", map[string]any{"product_id": pid, "quantity": it.Quantity})
	return c.Status(fiber.StatusCreated).JSON(it)
}

// PUT /api/cart/:id
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid cart item id")
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	it, err := h.Cart.Update(currentUser(c), id, req.Quantity)
	if err != nil {
		return fail(c, "cart.update", err)
	}
	return c.JSON(it)
}

// DELETE /api/cart/:id
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid cart item id")
	}
	if err := h.Cart.Remove(currentUser(c), id); err != nil {
		return fail(c, "cart.remove", err)
	}
	return c.JSON(fiber.Map{"message": "item removed from cart"})
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Cart.Clear(currentUser(c)); err != nil {
		return fail(c, "cart.clear", err)
	}
	return c.JSON(fiber.Map{"message": "cart cleared"})
}
