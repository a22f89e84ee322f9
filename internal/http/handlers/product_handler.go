package handlers

import (
	"github.com/gofiber/fiber/v2"

	"aradamart/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Wish    *services.WishlistService
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.View())
}

// POST /api/v1/products/load
func (h *ProductHandler) Load(c *fiber.Ctx) error {
	if err := h.Catalog.Load(c.UserContext()); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.Catalog.View())
}

// POST /api/v1/products/more
func (h *ProductHandler) More(c *fiber.Ctx) error {
	h.Catalog.LoadMore()
	return c.JSON(h.Catalog.View())
}

// GET /api/v1/products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, badParam("id", "invalid product id"))
	}
	item, ok := h.Catalog.Item(id)
	if !ok {
		if item, err = h.Catalog.Product(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
	}
	return c.JSON(fiber.Map{"product": item, "favorite": h.Wish.IsFavorite(id)})
}
