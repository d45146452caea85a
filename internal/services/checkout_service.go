package services

import (
	"errors"
	"math/rand"

	"wearline/internal/domain"
	"wearline/internal/repos"
)

// ShippingFee is the flat shipping charge added to every order.
const ShippingFee = 35.0

var ErrCartEmpty = errors.New("cart is empty")

type ShippingInfo struct {
	Address string
	City    string
	Country string
	Phone   string
}

type CheckoutService struct {
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo
}

func NewCheckoutService(carts *repos.CartRepo, orders *repos.OrderRepo) *CheckoutService {
	return &CheckoutService{Carts: carts, Orders: orders}
}

type Quote struct {
	Items    []domain.Item
	Subtotal float64
	Shipping float64
	Total    float64
}

// Quote prices the user's cart. Cart rows whose item was deleted from the
// catalog drop out of the join and are not charged.
func (s *CheckoutService) Quote(userID int64) (Quote, error) {
	items, err := s.Carts.Items(userID)
	if err != nil {
		return Quote{}, err
	}
	sub := 0.0
	for _, it := range items {
		sub += it.Price
	}
	return Quote{Items: items, Subtotal: sub, Shipping: ShippingFee, Total: sub + ShippingFee}, nil
}

// Place converts the cart into an order: snapshot total, random 6-digit
// display number, one order row, cart cleared. Order insert and cart clear
// share a transaction.
func (s *CheckoutService) Place(userID int64, ship ShippingInfo) (int64, float64, error) {
	q, err := s.Quote(userID)
	if err != nil {
		return 0, 0, err
	}
	if len(q.Items) == 0 {
		return 0, 0, ErrCartEmpty
	}

	o := domain.Order{
		UserID:  userID,
		Total:   q.Total,
		Number:  100000 + rand.Intn(900000),
		Address: ship.Address,
		City:    ship.City,
		Country: ship.Country,
		Phone:   ship.Phone,
	}
	id, err := s.Orders.Place(o)
	if err != nil {
		return 0, 0, err
	}
	return id, q.Total, nil
}
