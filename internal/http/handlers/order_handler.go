package handlers

import (
	applog "candleworks/internal/log"
	"candleworks/internal/services"
	"candleworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Order *services.OrderService
}

type placeReq struct {
	ShippingAddress string `json:"shipping_address"`
	Phone           string `json:"phone"`
	PaymentMethod   string `json:"payment_method"`
}

// POST /api/orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.ShippingAddress == "" {
		return badRequest(c, "shipping address is required")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return badRequest(c, "invalid phone")
	}

	u := currentUser(c)
	order, items, err := h.Order.Place(u, services.PlaceInput{
		ShippingAddress: req.ShippingAddress,
		Phone:           phone,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"error": err.Error()})
		return fail(c, "order.place", err)
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": order.ID,
		"total":    order.TotalAmount,
		"lines":    len(items),
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order": order, "items": items})
}

// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Order.ListByUser(currentUser(c))
	if err != nil {
		return fail(c, "orders.list", err)
	}
	return c.JSON(orders)
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	order, items, err := h.Order.Get(currentUser(c), id)
	if err != nil {
		return fail(c, "orders.get", err)
	}
	return c.JSON(fiber.Map{"order": order, "items": items})
}
