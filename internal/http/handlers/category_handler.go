package handlers

import (
	"github.com/gofiber/fiber/v2"

	"aradamart/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.Catalog.View().Categories})
}

// POST /api/v1/categories/load. A failed fetch keeps the previous list.
func (h *CategoryHandler) Load(c *fiber.Ctx) error {
	h.Catalog.LoadCategories(c.UserContext())
	return h.List(c)
}
