package handlers

import (
	"github.com/gofiber/fiber/v2"

	"aradamart/internal/domain"
)

const localAccount = "account"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if acc, ok := c.Locals(localAccount).(domain.Account); ok {
		data["Account"] = acc
	}
	return c.Render(tmpl, data)
}
