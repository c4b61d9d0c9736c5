package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"candleworks/internal/http/handlers"
	"candleworks/internal/repos"
)

// newTestApp wires the API against a seeded in-memory database, mirroring the
// route table in cmd/candleworks.
func newTestApp(t *testing.T) (*fiber.App, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	deps := handlers.NewDeps(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})
	app.Use(requestid.New())

	api := app.Group("/api")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/featured", deps.ProductHandler.Featured)
	api.Get("/products/categories", deps.CategoryHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/register", deps.AuthHandler.Register)
	api.Post("/login", deps.AuthHandler.Login)
	api.Post("/newsletter", deps.MarketingHandler.Subscribe)
	api.Post("/contact", deps.MarketingHandler.Contact)

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

	adm := handlers.RequireAdmin(deps.Auth)
	admin := api.Group("/admin", adm)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Put("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)

	return app, repos.NewUserRepo(db)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/api/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	tok, _ := body["access_token"].(string)
	if tok == "" {
		t.Fatalf("login %s: no token in %v", username, body)
	}
	return tok
}
