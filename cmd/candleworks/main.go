package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"candleworks/internal/config"
	"candleworks/internal/http/handlers"
	applog "candleworks/internal/log"
	"candleworks/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and keep internals out of the response
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db)
	api := app.Group("/api")

	// Public catalog
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/featured", deps.ProductHandler.Featured)
	api.Get("/products/categories", deps.CategoryHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)

	// Accounts (login throttled)
	api.Post("/register", deps.AuthHandler.Register)
	api.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)

	// Newsletter & contact
	api.Post("/newsletter", deps.MarketingHandler.Subscribe)
	api.Post("/contact", deps.MarketingHandler.Contact)

	// Authenticated
	auth := handlers.RequireUser(deps.Auth)
	api.Get("/users/me", auth, deps.AuthHandler.Me)
	api.Post("/logout", auth, deps.AuthHandler.Logout)
	api.Get("/cart", auth, deps.CartHandler.List)
	api.Post("/cart", auth, deps.CartHandler.Add)
	api.Put("/cart/:id", auth, deps.CartHandler.Update)
	api.Delete("/cart/:id", auth, deps.CartHandler.Remove)
	api.Delete("/cart", auth, deps.CartHandler.Clear)
	api.Post("/orders", auth, deps.OrderHandler.Place)
	api.Get("/orders", auth, deps.OrderHandler.List)
	api.Get("/orders/:id", auth, deps.OrderHandler.Get)

	// Admin
	adm := handlers.RequireAdmin(deps.Auth)
	admin := api.Group("/admin", adm)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Put("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/contact-messages", deps.AdminHandler.ContactMessages)
	admin.Delete("/contact-messages/:id", deps.AdminHandler.DeleteContactMessage)

	// Admin catalog management
	api.Post("/products", adm, deps.ProductHandler.Create)
	api.Put("/products/:id", adm, deps.ProductHandler.Update)
	api.Delete("/products/:id", adm, deps.ProductHandler.Delete)
	api.Post("/categories", adm, deps.CategoryHandler.Create)
	api.Delete("/categories/:name", adm, deps.CategoryHandler.Delete)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
