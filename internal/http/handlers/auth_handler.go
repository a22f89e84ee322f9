package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"aradamart/internal/auth"
	"aradamart/internal/domain"
	"aradamart/internal/log"
	"aradamart/internal/services"
)

type AuthHandler struct {
	Auth   *services.AuthService
	Secret string
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerReq struct {
	Name     string `json:"name" validate:"max=80"`
	Email    string `json:"email" validate:"required,mail"`
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

// issue signs a token for acc and sets it as a cookie as well.
func (h *AuthHandler) issue(c *fiber.Ctx, status int, acc domain.Account) error {
	tok, err := auth.GenerateToken(h.Secret, acc.ID, acc.Email, acc.Role)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    tok,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(auth.TokenExpiry),
	})
	return c.Status(status).JSON(fiber.Map{"token": tok, "account": acc})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	acc, ok := h.Auth.Login(req.Email, req.Password)
	if !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": h.Auth.Err()})
	}
	c.Locals(log.LocalAccountID, acc.ID)
	log.Audit(c, "auth.login.success", map[string]any{"email": acc.Email})
	return h.issue(c, fiber.StatusOK, acc)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	acc, ok := h.Auth.Register(req.Name, req.Email, req.Password)
	if !ok {
		log.Security(c, "auth.register.fail", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": h.Auth.Err()})
	}
	c.Locals(log.LocalAccountID, acc.ID)
	log.Audit(c, "auth.register", map[string]any{"email": acc.Email})
	return h.issue(c, fiber.StatusCreated, acc)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout()
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", nil)
	return c.SendStatus(fiber.StatusNoContent)
}

// Me reports the current session and the last auth error.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	acc, ok := h.Auth.Current()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in", "lastError": h.Auth.Err()})
	}
	return c.JSON(fiber.Map{"account": acc, "lastError": h.Auth.Err()})
}
