package handlers

import (
	"errors"

	"github.com/MedProgramer24/inventory-project/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// fail maps a domain error onto the wire: 404 for unresolved ids, 400 for
// validation and store failures. Authn/authz are handled before handlers run.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, domain.ErrNotFound) {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
