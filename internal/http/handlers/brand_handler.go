package handlers

import (
	applog "github.com/MedProgramer24/inventory-project/internal/log"
	"github.com/MedProgramer24/inventory-project/internal/repos"
	"github.com/MedProgramer24/inventory-project/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BrandHandler struct {
	Brands *repos.BrandRepo
}

// GET /api/v1/brands
func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.Brands.List()
	if err != nil {
		applog.Error(c, "brands.list.fail", err, nil)
		return fail(c, err)
	}
	return c.JSON(out)
}

// POST /api/v1/brands
func (h *BrandHandler) Create(c *fiber.Ctx) error {
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
	if err := h.Brands.Create(id, name); err != nil {
		applog.Error(c, "brands.create.fail", err, map[string]any{"name": name})
		return fail(c, err)
	}
	applog.Audit(c, "brands.create", map[string]any{"brand_id": id})
	b, err := h.Brands.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}
