package handlers

import (
	"strconv"

	"candleworks/internal/domain"
	applog "candleworks/internal/log"
	"candleworks/internal/repos"
	"candleworks/internal/services"
	"candleworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := repos.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Skip:     c.QueryInt("skip", 0),
		Limit:    c.QueryInt("limit", 100),
	}
	if v := c.Query("min_price"); v != "" {
		f.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_price"); v != "" {
		f.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}
	prods, err := h.Catalog.List(f)
	if err != nil {
		return fail(c, "products.list", err)
	}
	return c.JSON(prods)
}

// GET /api/products/featured
func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	prods, err := h.Catalog.Featured()
	if err != nil {
		return fail(c, "products.featured", err)
	}
	return c.JSON(prods)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return fail(c, "products.get", err)
	}
	return c.JSON(p)
}

type productReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	IsAvailable bool    `json:"is_available"`
	IsFeatured  bool    `json:"is_featured"`
}

func (r productReq) check() (string, bool) {
	if _, ok := validate.Name(r.Name); !ok {
		return "name is required", false
	}
	if r.Price < 0 {
		return "price must be non-negative", false
	}
	if r.Stock < 0 {
		return "stock must be non-negative", false
	}
	return "", true
}

// POST /api/products (admin)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg, ok := req.check(); !ok {
		return badRequest(c, msg)
	}
	p, err := h.Catalog.CreateProduct(domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return fail(c, "products.create", err)
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/products/:id (admin)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if msg, ok := req.check(); !ok {
		return badRequest(c, msg)
	}
	p, err := h.Catalog.UpdateProduct(domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsAvailable: req.IsAvailable,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return fail(c, "products.update", err)
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

// DELETE /api/products/:id (admin)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, "products.delete", err)
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "product deleted"})
}
