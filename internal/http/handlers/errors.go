package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"aradamart/internal/catalog"
	"aradamart/internal/domain"
	applog "aradamart/internal/log"
	"aradamart/internal/validate"
)

const msgInternal = "Something went wrong. Please try again."

func isAPI(c *fiber.Ctx) bool { return strings.HasPrefix(c.Path(), "/api/") }

// ErrorHandler logs unexpected errors and answers with a friendly message,
// never the error text itself.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		}
	}
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	if isAPI(c) {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

// NotFound is the catch-all for unknown routes.
func NotFound(c *fiber.Ctx) error {
	if isAPI(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
}

// fail maps known error kinds to a status; anything else goes to
// ErrorHandler.
func fail(c *fiber.Ctx, err error) error {
	var (
		bad      *validate.Error
		conflict *domain.ValidationError
		missing  *catalog.NotFoundError
		upstream *catalog.NetworkError
	)
	switch {
	case errors.As(err, &bad):
		applog.Security(c, "validation.fail", map[string]any{"field": bad.Field})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": bad.Message})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflict.Message, "field": conflict.Field})
	case errors.Is(err, domain.ErrRecordNotFound), errors.As(err, &missing):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.As(err, &upstream):
		applog.Warn(c, "catalog.upstream.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": upstream.Error()})
	}
	return err
}

// bind parses the JSON body into dst and validates it.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return &validate.Error{Field: "body", Message: "invalid request body"}
	}
	return validate.Struct(dst)
}

func badParam(field, msg string) error { return &validate.Error{Field: field, Message: msg} }
