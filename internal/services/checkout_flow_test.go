package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wearline/internal/domain"
	"wearline/internal/repos"
	"wearline/internal/services"
)

// Full flow: sign up, cart two items, check out with a complete address.
// 20.0 + 10.0 + 35.0 shipping = 65.0, and the cart must come back empty.
func TestCheckoutFlow(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO items(name,price) VALUES('Oxford Shirt',20.0),('Linen Dress',10.0)`)

	auth := &services.AuthService{Users: repos.NewUserRepo(db)}
	cart := services.NewCartService(repos.NewCartRepo(db), repos.NewItemRepo(db))
	checkout := services.NewCheckoutService(repos.NewCartRepo(db), repos.NewOrderRepo(db))

	alice, err := auth.SignUp("alice", "password123", "password123")
	require.NoError(t, err)

	require.NoError(t, cart.Add(alice.ID, 1))
	require.NoError(t, cart.Add(alice.ID, 2))

	q, err := checkout.Quote(alice.ID)
	require.NoError(t, err)
	require.InDelta(t, 30.0, q.Subtotal, 1e-9)
	require.InDelta(t, services.ShippingFee, q.Shipping, 1e-9)
	require.InDelta(t, 65.0, q.Total, 1e-9)

	orderID, total, err := checkout.Place(alice.ID, services.ShippingInfo{
		Address: "1 Main St", City: "Springfield", Country: "USA", Phone: "+1 555 0100",
	})
	require.NoError(t, err)
	require.NotZero(t, orderID)
	require.InDelta(t, 65.0, total, 1e-9)

	// cart cleared, exactly one order row with the snapshot total
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id=?`, alice.ID))
	require.Equal(t, 0, n)

	var orders []domain.Order
	require.NoError(t, db.Select(&orders, `SELECT id,user_id,total_price,order_number,address,city,country,phone,created_at FROM orders WHERE user_id=?`, alice.ID))
	require.Len(t, orders, 1)
	require.InDelta(t, 65.0, orders[0].Total, 1e-9)
	require.GreaterOrEqual(t, orders[0].Number, 100000)
	require.LessOrEqual(t, orders[0].Number, 999999)
	require.Equal(t, "1 Main St", orders[0].Address)
}

func TestCheckoutTotalSkipsDeletedItems(t *testing.T) {
	db := memdb(t)
	db.MustExec(`INSERT INTO items(name,price) VALUES('Oxford Shirt',20.0),('Linen Dress',10.0)`)

	cart := services.NewCartService(repos.NewCartRepo(db), repos.NewItemRepo(db))
	checkout := services.NewCheckoutService(repos.NewCartRepo(db), repos.NewOrderRepo(db))

	require.NoError(t, cart.Add(7, 1))
	require.NoError(t, cart.Add(7, 2))
	// item 2 disappears from the catalog; its cart row is silently dropped
	db.MustExec(`DELETE FROM items WHERE id=2`)

	_, total, err := checkout.Place(7, services.ShippingInfo{
		Address: "1 Main St", City: "Springfield", Country: "USA", Phone: "+1 555 0100",
	})
	require.NoError(t, err)
	require.InDelta(t, 20.0+services.ShippingFee, total, 1e-9)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := memdb(t)
	checkout := services.NewCheckoutService(repos.NewCartRepo(db), repos.NewOrderRepo(db))

	_, _, err := checkout.Place(7, services.ShippingInfo{
		Address: "1 Main St", City: "Springfield", Country: "USA", Phone: "+1 555 0100",
	})
	require.ErrorIs(t, err, services.ErrCartEmpty)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM orders`))
	require.Equal(t, 0, n)
}
