package handlers

import (
	"errors"

	"wearline/internal/domain"
	applog "wearline/internal/log"
	"wearline/internal/services"
	"wearline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
	Auth *services.AuthService
}

// sessionUser resolves the signed-in user for JSON cart endpoints,
// which answer with an error object instead of redirecting.
func (h *CartHandler) sessionUser(c *fiber.Ctx) *domain.User {
	sid := c.Cookies("sid")
	if sid == "" {
		return nil
	}
	u, err := h.Auth.CurrentUser(sid)
	if err != nil {
		return nil
	}
	return u
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	itemID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	u := h.sessionUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please sign in first"})
	}

	if err := h.Cart.Add(u.ID, itemID); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
		case errors.Is(err, services.ErrAlreadyInCart):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "item already there"})
		default:
			applog.Error(c, "cart.add.fail", err, map[string]any{"item_id": itemID})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add item"})
		}
	}
	applog.Audit(c, "cart.add", map[string]any{"user_id": u.ID, "item_id": itemID})
	return c.JSON(fiber.Map{"success": true})
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	itemID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	u := h.sessionUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "please sign in first"})
	}

	if err := h.Cart.Remove(u.ID, itemID); err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not in cart"})
		}
		applog.Error(c, "cart.remove.fail", err, map[string]any{"item_id": itemID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not remove item"})
	}
	applog.Audit(c, "cart.remove", map[string]any{"user_id": u.ID, "item_id": itemID})
	return c.JSON(fiber.Map{"success": true})
}

// View renders /shoppingcart/:user_id. The path user must be the session user.
func (h *CartHandler) View(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("user_id"))
	if !ok {
		return c.Redirect("/signin")
	}
	u := h.sessionUser(c)
	if u == nil || u.ID != userID {
		applog.Security(c, "access.denied.cart", map[string]any{"path_user": userID})
		return c.Redirect("/signin")
	}

	cv, err := h.Cart.View(u.ID)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "shoppingcart", fiber.Map{"Cart": cv, "UserID": u.ID})
}
