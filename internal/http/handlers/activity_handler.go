package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"aradamart/internal/domain"
	applog "aradamart/internal/log"
	"aradamart/internal/store"
)

// ActivityArchive is the long-term activity history, when one is configured.
type ActivityArchive interface {
	List(ctx context.Context, limit int) ([]domain.Activity, error)
}

type ActivityHandler struct {
	Log     *store.ActivityLog
	Archive ActivityArchive
}

const defaultActivityLimit = 100

// GET /api/v1/admin/activity?limit=&source=archive
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultActivityLimit)
	if limit < 0 {
		return fail(c, badParam("limit", "limit must not be negative"))
	}
	if c.Query("source") == "archive" {
		if h.Archive == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "activity archive is not configured"})
		}
		acts, err := h.Archive.List(c.UserContext(), limit)
		if err != nil {
			applog.Error(c, "admin.activity.archive.fail", err, nil)
			return err
		}
		return c.JSON(fiber.Map{"activities": acts, "source": "archive"})
	}
	acts := h.Log.List()
	if limit > 0 && len(acts) > limit {
		acts = acts[:limit]
	}
	return c.JSON(fiber.Map{"activities": acts, "source": "memory"})
}
