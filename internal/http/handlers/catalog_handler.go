package handlers

import (
	"errors"

	"wearline/internal/log"
	"wearline/internal/services"
	"wearline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	items, err := h.Catalog.ListLatest(24)
	if err != nil {
		log.Error(c, "home.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the catalog"})
	}
	return render(c, "home", fiber.Map{"Items": items})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Item not found"})
	}
	it, err := h.Catalog.GetItem(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Item not found"})
	}
	return render(c, "item", fiber.Map{"Item": it})
}

// ItemsByGender serves GET /getitems/:gender as a flat JSON array.
// An empty slice of the catalog answers 404; callers treat the two the same.
func (h *CatalogHandler) ItemsByGender(c *fiber.Ctx) error {
	gender, ok := validate.Gender(c.Params("gender"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown gender category"})
	}
	records, err := h.Catalog.ItemsByGender(gender)
	if err != nil {
		if errors.Is(err, services.ErrNoItemsFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No items found for the specified gender"})
		}
		log.Error(c, "getitems.fail", err, map[string]any{"gender": gender})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load items"})
	}
	return c.JSON(records)
}
