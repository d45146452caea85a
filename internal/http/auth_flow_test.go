package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	html "github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"

	"wearline/internal/http/handlers"
	"wearline/internal/repos"
	"wearline/internal/services"
)

func authApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	auth := &services.AuthService{Users: repos.NewUserRepo(db)}
	authH := &handlers.AuthHandler{Auth: auth}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Get("/signin", authH.SigninForm)
	app.Post("/signin", limiter.New(limiter.Config{Max: 3, Expiration: time.Minute}), authH.Signin)
	app.Get("/logout", authH.Logout)
	return app, auth
}

func postForm(app *fiber.App, path, form string, cookies ...*http.Cookie) (*http.Response, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return app.Test(req)
}

func TestSignupThenSignin(t *testing.T) {
	app, _ := authApp(t)

	resp, err := postForm(app, "/signup", "username=alice&password=password123&password_confirmation=password123")
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/signin", resp.Header.Get("Location"))

	// duplicate username is rejected
	resp, err = postForm(app, "/signup", "username=alice&password=password123&password_confirmation=password123")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// wrong password: generic 401
	resp, err = postForm(app, "/signin", "username=alice&password=wrongpass99")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// good credentials: session cookie plus redirect home
	resp, err = postForm(app, "/signin", "username=alice&password=password123")
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	app, _ := authApp(t)

	resp, err := postForm(app, "/signup", "username=bob&password=short7&password_confirmation=short7")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSigninThrottle(t *testing.T) {
	app, _ := authApp(t)

	for i := 0; i < 3; i++ {
		resp, err := postForm(app, "/signin", "username=ghost&password=wrongpass99")
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, err := postForm(app, "/signin", "username=ghost&password=wrongpass99")
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestLogoutUnbindsSession(t *testing.T) {
	app, auth := authApp(t)

	resp, err := postForm(app, "/signup", "username=alice&password=password123&password_confirmation=password123")
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, err = postForm(app, "/signin", "username=alice&password=password123")
	require.NoError(t, err)
	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)

	u, err := auth.CurrentUser(sid)
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	respOut, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, respOut.StatusCode)

	_, err = auth.CurrentUser(sid)
	require.Error(t, err)
}
