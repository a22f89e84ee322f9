package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"aradamart/internal/auth"
	"aradamart/internal/domain"
	applog "aradamart/internal/log"
	"aradamart/internal/services"
)

// TokenCookie carries the JWT for browser pages.
const TokenCookie = "token"

func tokenFrom(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return c.Cookies(TokenCookie)
}

func deny(c *fiber.Ctx, code int, msg string) error {
	if isAPI(c) {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	return c.Status(code).Render("notfound", fiber.Map{"Message": msg})
}

// RequireAdmin admits requests whose token names an account that is an
// admin right now. The role is read from the account table, so a demotion
// takes effect before the token expires.
func RequireAdmin(secret string, users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := tokenFrom(c)
		if tok == "" {
			applog.Security(c, "access.denied.admin", map[string]any{"reason": "no_token"})
			return deny(c, fiber.StatusUnauthorized, "Authentication required")
		}
		claims, err := auth.ValidateToken(secret, tok)
		if err != nil {
			applog.Security(c, "access.denied.admin", map[string]any{"reason": "bad_token"})
			return deny(c, fiber.StatusUnauthorized, "Authentication required")
		}
		acc, ok := users.Get(claims.AccountID)
		if !ok || acc.Role != domain.RoleAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"account_id": claims.AccountID})
			return deny(c, fiber.StatusForbidden, "Access denied")
		}
		c.Locals(applog.LocalAccountID, acc.ID)
		c.Locals(localAccount, acc)
		return c.Next()
	}
}
