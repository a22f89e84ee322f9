package handlers

import (
	"github.com/gofiber/fiber/v2"

	"aradamart/internal/log"
	"aradamart/internal/services"
	"aradamart/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

type queryReq struct {
	Q string `json:"q"`
}

type categoryReq struct {
	Category string `json:"category"`
}

// POST /api/v1/products/query
func (h *SearchHandler) Query(c *fiber.Ctx) error {
	var req queryReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	q, ok := validate.Q(req.Q)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": req.Q})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Enter a valid keyword (letters/numbers only)"})
	}
	h.Catalog.SetQuery(q)
	return c.JSON(h.Catalog.View())
}

// POST /api/v1/products/category
func (h *SearchHandler) Category(c *fiber.Ctx) error {
	var req categoryReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	cat, ok := validate.Category(req.Category)
	if !ok {
		return fail(c, badParam("category", "Invalid category"))
	}
	h.Catalog.SetCategory(cat)
	return c.JSON(h.Catalog.View())
}
