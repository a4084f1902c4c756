package handlers

import (
	applog "github.com/MedProgramer24/inventory-project/internal/log"
	"github.com/MedProgramer24/inventory-project/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	Stats *repos.StatsRepo
}

// GET /api/v1/stats
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	s, err := h.Stats.Overview()
	if err != nil {
		applog.Error(c, "stats.overview.fail", err, nil)
		return fail(c, err)
	}
	return c.JSON(s)
}
