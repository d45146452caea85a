package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"wearline/internal/http/handlers"
	"wearline/internal/repos"
	"wearline/internal/services"
)

func checkoutApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	auth := &services.AuthService{Users: repos.NewUserRepo(db)}
	checkH := &handlers.CheckoutHandler{
		Checkout: services.NewCheckoutService(repos.NewCartRepo(db), repos.NewOrderRepo(db)),
		Orders:   repos.NewOrderRepo(db),
		Auth:     auth,
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/checkout", handlers.RequireUser(auth), checkH.Form)
	app.Post("/checkout", handlers.RequireUser(auth), checkH.Place)
	app.Get("/user/:user_id", checkH.History)
	return app, db
}

func TestCheckoutRequiresSignin(t *testing.T) {
	app, _ := checkoutApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/checkout", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/signin", resp.Header.Get("Location"))
}

func TestCheckoutEmptyCartRedirectsHome(t *testing.T) {
	app, db := checkoutApp(t)
	sid := signedInSID(t, db, "alice")

	req := httptest.NewRequest("GET", "/checkout", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestCheckoutValidationAndPlacement(t *testing.T) {
	app, db := checkoutApp(t)
	sid := signedInSID(t, db, "alice")
	cookie := &http.Cookie{Name: "sid", Value: sid}

	var userID int64
	require.NoError(t, db.Get(&userID, `SELECT id FROM users WHERE username='alice'`))
	db.MustExec(`INSERT INTO cart_items(user_id,item_id) VALUES(?,1),(?,2)`, userID, userID)

	var wantSubtotal float64
	require.NoError(t, db.Get(&wantSubtotal, `SELECT SUM(price) FROM items WHERE id IN (1,2)`))

	// missing city: re-rendered form, no order created
	resp, err := postForm(app, "/checkout", "address=1+Main+St&country=USA&number=%2B1+555+0100", cookie)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM orders`))
	require.Equal(t, 0, n)
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id=?`, userID))
	require.Equal(t, 2, n)

	// complete form: order created, cart cleared
	resp, err = postForm(app, "/checkout", "address=1+Main+St&city=Springfield&country=USA&number=%2B1+555+0100", cookie)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var total float64
	require.NoError(t, db.Get(&total, `SELECT total_price FROM orders WHERE user_id=?`, userID))
	require.InDelta(t, wantSubtotal+services.ShippingFee, total, 1e-9)
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id=?`, userID))
	require.Equal(t, 0, n)
}

func TestOrderHistoryOwnership(t *testing.T) {
	app, db := checkoutApp(t)
	sid := signedInSID(t, db, "alice")

	var userID int64
	require.NoError(t, db.Get(&userID, `SELECT id FROM users WHERE username='alice'`))

	// someone else's history redirects to signin
	req := httptest.NewRequest("GET", "/user/9999", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/signin", resp.Header.Get("Location"))

	// own history renders
	req = httptest.NewRequest("GET", "/user/"+strconv.FormatInt(userID, 10), nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

