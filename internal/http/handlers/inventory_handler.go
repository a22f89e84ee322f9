package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	applog "aradamart/internal/log"
	"aradamart/internal/services"
	"aradamart/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

type inventoryReq struct {
	SKU      string           `json:"sku" validate:"required,max=64"`
	Name     string           `json:"name" validate:"required,max=120"`
	Price    *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Quantity *int             `json:"quantity" validate:"required,gte=0"`
}

type adjustReq struct {
	Delta *int `json:"delta" validate:"required,ne=0"`
	Prune bool `json:"prune"`
}

func (h *InventoryHandler) parse(c *fiber.Ctx) (inventoryReq, error) {
	var req inventoryReq
	if err := c.BodyParser(&req); err != nil {
		return req, badParam("body", "invalid request body")
	}
	req.SKU = strings.TrimSpace(req.SKU)
	req.Name = strings.TrimSpace(req.Name)
	return req, validate.Struct(&req)
}

func recordID(c *fiber.Ctx) (string, error) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return "", badParam("id", "invalid id")
	}
	return id, nil
}

// GET /api/v1/admin/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"records": h.Inv.List()})
}

// POST /api/v1/admin/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		return fail(c, err)
	}
	rec, err := h.Inv.Create(c.UserContext(), req.SKU, req.Name, *req.Price, *req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "admin.inventory.create", map[string]any{"id": rec.ID, "sku": rec.SKU, "qty": rec.Quantity})
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// PUT /api/v1/admin/inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return fail(c, err)
	}
	req, err := h.parse(c)
	if err != nil {
		return fail(c, err)
	}
	rec, err := h.Inv.Update(c.UserContext(), id, req.SKU, req.Name, *req.Price, *req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "admin.inventory.update", map[string]any{"id": rec.ID, "sku": rec.SKU, "qty": rec.Quantity})
	return c.JSON(rec)
}

// DELETE /api/v1/admin/inventory/:id. Unknown ids succeed silently.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return fail(c, err)
	}
	h.Inv.Delete(c.UserContext(), id)
	applog.Audit(c, "admin.inventory.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/v1/admin/inventory/:id/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return fail(c, err)
	}
	var req adjustReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	res, ok := h.Inv.Adjust(c.UserContext(), id, *req.Delta, req.Prune)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	applog.Audit(c, "admin.inventory.adjust", map[string]any{
		"id": id, "delta": *req.Delta, "qty": res.Record.Quantity, "removed": res.Removed,
	})
	return c.JSON(res)
}

// GET /api/v1/admin/inventory/:id/availability
func (h *InventoryHandler) Availability(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return fail(c, err)
	}
	av, ok := h.Inv.Availability(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(av)
}
