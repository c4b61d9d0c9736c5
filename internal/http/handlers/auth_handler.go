package handlers

import (
	applog "candleworks/internal/log"
	"candleworks/internal/services"
	"candleworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	username, ok := validate.Username(req.Username)
	if !ok {
		return badRequest(c, "username must be 3-30 characters")
	}
	if !validate.Password(req.Password) {
		return badRequest(c, "password must be 8-72 characters")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return badRequest(c, "invalid phone")
	}

	u, err := h.Auth.Register(services.RegisterInput{
		Email:    email,
		Username: username,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    phone,
	})
	if err != nil {
		return fail(c, "auth.register", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(u)
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	token, u, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
		return fail(c, "auth.login", err)
	}
	applog.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_ = h.Auth.Logout(bearerToken(c))
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"message": "logged out"})
}
