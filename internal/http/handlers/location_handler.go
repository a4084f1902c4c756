package handlers

import (
	applog "github.com/MedProgramer24/inventory-project/internal/log"
	"github.com/MedProgramer24/inventory-project/internal/repos"
	"github.com/MedProgramer24/inventory-project/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LocationHandler struct {
	Locations *repos.LocationRepo
}

// GET /api/v1/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.Locations.List()
	if err != nil {
		applog.Error(c, "locations.list.fail", err, nil)
		return fail(c, err)
	}
	return c.JSON(out)
}

// POST /api/v1/locations
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}

	id := uuid.NewString()
	if err := h.Locations.Create(id, name); err != nil {
		applog.Error(c, "locations.create.fail", err, map[string]any{"name": name})
		return fail(c, err)
	}
	applog.Audit(c, "locations.create", map[string]any{"location_id": id})
	l, err := h.Locations.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}
