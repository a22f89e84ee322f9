package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"aradamart/internal/services"
	"aradamart/internal/store"
)

// AdminHandler serves the html admin pages.
type AdminHandler struct {
	Inv *services.InventoryService
	Log *store.ActivityLog
}

// GET /admin/inventory
func (h *AdminHandler) InventoryPage(c *fiber.Ctx) error {
	recs := h.Inv.List()
	total := decimal.Zero
	low := 0
	for _, r := range recs {
		total = total.Add(r.Value())
		if r.Quantity < 5 {
			low++
		}
	}
	return render(c, "admin_inventory", fiber.Map{
		"Records":    recs,
		"Count":      len(recs),
		"LowStock":   low,
		"TotalValue": total.StringFixed(2),
	})
}

// GET /admin/activity
func (h *AdminHandler) ActivityPage(c *fiber.Ctx) error {
	return render(c, "admin_activity", fiber.Map{"Activities": h.Log.List()})
}
