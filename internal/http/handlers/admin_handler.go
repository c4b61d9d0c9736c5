package handlers

import (
	applog "candleworks/internal/log"
	"candleworks/internal/services"
	"candleworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Order     *services.OrderService
	Marketing *services.MarketingService
}

// GET /api/admin/orders
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.Order.AdminList(currentUser(c))
	if err != nil {
		return fail(c, "admin.orders.list", err)
	}
	return c.JSON(orders)
}

// PUT /api/admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Status == "" {
		return badRequest(c, "status is required")
	}
	if err := h.Order.AdminUpdateStatus(currentUser(c), id, req.Status); err != nil {
		return fail(c, "admin.orders.update", err)
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": req.Status})
	return c.JSON(fiber.Map{"message": "order status updated"})
}

// GET /api/admin/contact-messages
func (h *AdminHandler) ContactMessages(c *fiber.Ctx) error {
	msgs, err := h.Marketing.ListMessages(currentUser(c))
	if err != nil {
		return fail(c, "admin.contact.list", err)
	}
	return c.JSON(msgs)
}

// DELETE /api/admin/contact-messages/:id
func (h *AdminHandler) DeleteContactMessage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid message id")
	}
	if err := h.Marketing.DeleteMessage(currentUser(c), id); err != nil {
		return fail(c, "admin.contact.delete", err)
	}
	applog.Audit(c, "admin.contact.delete", map[string]any{"message_id": id})
	return c.JSON(fiber.Map{"message": "contact message deleted"})
}
