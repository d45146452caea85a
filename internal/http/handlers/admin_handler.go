package handlers

import (
	"errors"
	"path/filepath"

	"wearline/internal/domain"
	applog "wearline/internal/log"
	"wearline/internal/repos"
	"wearline/internal/services"
	"wearline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog   *services.CatalogService
	Orders    *repos.OrderRepo
	UploadDir string
}

// GET /additem
func (h *AdminHandler) AddItemForm(c *fiber.Ctx) error {
	return render(c, "additem", fiber.Map{})
}

// POST /additem — every field including the image is required; nothing is
// written when validation fails.
func (h *AdminHandler) AddItem(c *fiber.Ctx) error {
	name, nameOK := validate.Name(c.FormValue("item_name"))
	price, priceOK := validate.Price(c.FormValue("item_price"))
	gender, genderOK := validate.Gender(c.FormValue("gender"))
	itemType := c.FormValue("type")
	description := c.FormValue("item_description")
	image, imgErr := c.FormFile("item_image")

	if !nameOK || !priceOK || !genderOK || itemType == "" || description == "" || imgErr != nil {
		applog.Security(c, "validation.fail", map[string]any{"action": "additem"})
		return c.Status(fiber.StatusBadRequest).Render("additem", fiber.Map{"Err": "All fields are required"})
	}

	filename := validate.Filename(image.Filename)
	if filename == "" {
		return c.Status(fiber.StatusBadRequest).Render("additem", fiber.Map{"Err": "Invalid image filename"})
	}
	// Collisions overwrite: last upload wins.
	if err := c.SaveFile(image, filepath.Join(h.UploadDir, filename)); err != nil {
		applog.Error(c, "additem.upload.fail", err, map[string]any{"filename": filename})
		return c.Status(fiber.StatusInternalServerError).Render("additem", fiber.Map{"Err": "Could not store the image"})
	}

	id, err := h.Catalog.AddItem(domain.Item{
		Name:        name,
		Price:       price,
		ImagePath:   "uploads/" + filename,
		Type:        itemType,
		Gender:      gender,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, services.ErrItemExists) {
			return c.Status(fiber.StatusConflict).Render("additem", fiber.Map{"Err": err.Error()})
		}
		applog.Error(c, "additem.fail", err, map[string]any{"name": name})
		return c.Status(fiber.StatusInternalServerError).Render("additem", fiber.Map{"Err": "Could not save the item"})
	}

	applog.Audit(c, "additem.success", map[string]any{"item_id": id, "name": name})
	return c.Redirect("/additem")
}

// GET /admin/orders — latest orders across all users.
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	orders, err := h.Orders.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": orders})
}
