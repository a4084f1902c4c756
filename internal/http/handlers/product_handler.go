package handlers

import (
	"github.com/MedProgramer24/inventory-project/internal/domain"
	applog "github.com/MedProgramer24/inventory-project/internal/log"
	"github.com/MedProgramer24/inventory-project/internal/services"
	"github.com/MedProgramer24/inventory-project/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Products *services.ProductService
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"), 1)
	perPage := validate.PerPage(c.Query("itemsperpage"), 10)

	search := ""
	if q, ok := validate.Q(c.Query("search")); ok {
		search = q
	}
	brand := ""
	if id, ok := validate.ID(c.Query("manufacturer")); ok {
		brand = id
	}

	res, err := h.Products.List(search, brand, page, perPage)
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return fail(c, err)
	}
	return c.JSON(res)
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

// GET /api/v1/products/:id/history returns the same resolved view as Get;
// clients that only chart the trail read .history off it.
func (h *ProductHandler) History(c *fiber.Ctx) error {
	return h.Get(c)
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.NewProduct
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}

	createdBy := ""
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		createdBy = u.ID
	}

	p, err := h.Products.Create(createdBy, in)
	if err != nil {
		applog.Error(c, "products.create.fail", err, map[string]any{"title": in.Title})
		return fail(c, err)
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PATCH /api/v1/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	if patch.HasStatusChange() {
		name, ok := validate.StatusName(patch.Status.Value)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
		}
		patch.Status.Value = name
	}
	if patch.HasLocationChange() {
		locID, ok := validate.ID(patch.LocationID.Value)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid locationId"})
		}
		patch.LocationID.Value = locID
	}

	if err := h.Products.Update(id, patch); err != nil {
		applog.Error(c, "products.update.fail", err, map[string]any{"product_id": id})
		return fail(c, err)
	}
	applog.Audit(c, "products.update", map[string]any{
		"product_id":     id,
		"location_moved": patch.HasLocationChange(),
		"status_added":   patch.HasStatusChange(),
	})
	return c.JSON(fiber.Map{"message": "success"})
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err := h.Products.Delete(id); err != nil {
		applog.Error(c, "products.delete.fail", err, map[string]any{"product_id": id})
		return fail(c, err)
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
