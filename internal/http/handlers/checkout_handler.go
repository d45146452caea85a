package handlers

import (
	"errors"
	"strings"

	"wearline/internal/domain"
	applog "wearline/internal/log"
	"wearline/internal/repos"
	"wearline/internal/services"
	"wearline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
	Orders   *repos.OrderRepo
	Auth     *services.AuthService
}

// Form shows the checkout page: cart lines, subtotal, shipping, total.
// RequireUser has already put the user into locals.
func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/signin")
	}

	q, err := h.Checkout.Quote(u.ID)
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	if len(q.Items) == 0 {
		return c.Redirect("/")
	}
	return render(c, "checkout", fiber.Map{
		"Quote": q, "Err": "",
		"Address": "", "City": "", "Country": "", "Phone": "",
	})
}

// Place handles the checkout POST. Missing shipping fields re-render the form
// with the quote intact; on success the cart converts to an order atomically.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/signin")
	}

	address := strings.TrimSpace(c.FormValue("address"))
	city := strings.TrimSpace(c.FormValue("city"))
	country := strings.TrimSpace(c.FormValue("country"))
	phone, phoneOK := validate.Phone(c.FormValue("number"))

	if address == "" || city == "" || country == "" || !phoneOK {
		q, err := h.Checkout.Quote(u.ID)
		if err != nil {
			applog.Error(c, "checkout.load", err, nil)
			return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
		}
		applog.Security(c, "validation.fail", map[string]any{"action": "checkout"})
		return c.Status(fiber.StatusBadRequest).Render("checkout", fiber.Map{
			"Quote": q, "Err": "All fields are required",
			"Address": address, "City": city, "Country": country, "Phone": c.FormValue("number"),
		})
	}

	orderID, total, err := h.Checkout.Place(u.ID, services.ShippingInfo{
		Address: address, City: city, Country: country, Phone: phone,
	})
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			return c.Redirect("/")
		}
		applog.Error(c, "order.place.fail", err, map[string]any{"user_id": u.ID})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not place your order. Please try again."})
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "user_id": u.ID, "total": total})
	return c.Redirect("/")
}

// History renders /user/:user_id with the user's orders.
func (h *CheckoutHandler) History(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("user_id"))
	if !ok {
		return c.Redirect("/signin")
	}

	sid := c.Cookies("sid")
	if sid == "" {
		return c.Redirect("/signin")
	}
	u, err := h.Auth.CurrentUser(sid)
	if err != nil || u == nil || u.ID != userID {
		applog.Security(c, "access.denied.orders", map[string]any{"path_user": userID})
		return c.Redirect("/signin")
	}

	orders, err := h.Orders.ListByUser(u.ID)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "orders", fiber.Map{"Orders": orders})
}
