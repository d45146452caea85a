package handlers

import (
	"errors"
	"time"

	"wearline/internal/log"
	"wearline/internal/services"
	"wearline/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind HTTPS
		})
	}
	return sid
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	username, ok := validate.Username(c.FormValue("username"))
	if !ok {
		log.Security(c, "auth.signup.fail", map[string]any{"reason": "bad_username"})
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{"Err": "Username must be 3-32 letters, digits, or . _ -"})
	}

	_, err := h.Auth.SignUp(username, c.FormValue("password"), c.FormValue("password_confirmation"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserExists),
			errors.Is(err, services.ErrPasswordMismatch),
			errors.Is(err, services.ErrPasswordTooShort):
			log.Security(c, "auth.signup.fail", map[string]any{"username": username, "reason": err.Error()})
			return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{"Err": err.Error()})
		default:
			log.Error(c, "auth.signup.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).Render("signup", fiber.Map{"Err": "Could not create account. Please try again."})
		}
	}

	log.Audit(c, "auth.signup.success", map[string]any{"username": username})
	return c.Redirect("/signin")
}

func (h *AuthHandler) SigninForm(c *fiber.Ctx) error {
	return render(c, "signin", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username := c.FormValue("username")
	pass := c.FormValue("password")

	// One generic message for unknown user and bad password alike.
	_, err := h.Auth.SignIn(sid, username, pass)
	if err != nil {
		log.Security(c, "auth.signin.fail", map[string]any{"username": username})
		return c.Status(fiber.StatusUnauthorized).Render("signin", fiber.Map{"Err": "wrong username or password"})
	}

	log.Audit(c, "auth.signin.success", map[string]any{"username": username})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.SignOut(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
