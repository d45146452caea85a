package handlers

import (
	"strings"

	"wearline/internal/log"
	"wearline/internal/services"
	"wearline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Initial page load: show empty search without errors
		return render(c, "search", fiber.Map{"Q": "", "Gender": "", "Type": "", "Items": []any{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
			"Q": "", "Gender": "", "Type": "", "Items": []any{}, "Count": 0, "Err": "Enter a valid keyword (letters/numbers only)",
		})
	}
	q = strings.ToLower(q)

	gender := strings.TrimSpace(c.Query("gender"))
	if gender != "" {
		if _, ok := validate.Gender(gender); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "gender"})
			return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
				"Q": q, "Gender": "", "Type": "", "Items": []any{}, "Count": 0, "Err": "Invalid filter",
			})
		}
	}
	itemType := strings.TrimSpace(c.Query("type"))

	items, err := h.Catalog.Search(q, itemType, gender, 1, 20)
	if err != nil {
		log.Error(c, "search.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load results. Please retry."})
	}

	return render(c, "search", fiber.Map{
		"Q": q, "Type": itemType, "Gender": gender,
		"Items": items, "Count": len(items),
	})
}
