package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "aradamart/internal/log"
	"aradamart/internal/services"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

func productID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, badParam("id", "invalid product id")
	}
	return id, nil
}

// GET /api/v1/favorites
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	items := h.Wish.List()
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// POST /api/v1/favorites/:id/toggle
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return fail(c, err)
	}
	on, err := h.Wish.Toggle(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	applog.Info(c, "wishlist.toggle", map[string]any{"product": id, "favorite": on})
	return c.JSON(fiber.Map{"id": id, "favorite": on})
}

// DELETE /api/v1/favorites/:id
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return fail(c, err)
	}
	h.Wish.Remove(id)
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/v1/favorites
func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	h.Wish.Clear()
	applog.Info(c, "wishlist.clear", nil)
	return c.SendStatus(fiber.StatusNoContent)
}
