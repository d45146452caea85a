package services

import (
	"database/sql"
	"errors"

	"wearline/internal/domain"
	"wearline/internal/repos"
)

var (
	ErrAlreadyInCart = errors.New("item already there")
	ErrNotInCart     = errors.New("item not in cart")
	ErrItemNotFound  = errors.New("item not found")
)

type CartService struct {
	Carts *repos.CartRepo
	Items *repos.ItemRepo
}

func NewCartService(carts *repos.CartRepo, items *repos.ItemRepo) *CartService {
	return &CartService{Carts: carts, Items: items}
}

// Add inserts one (user,item) cart row. A pair already in the cart is
// rejected rather than counted up; the cart holds one unit per item.
func (s *CartService) Add(userID, itemID int64) error {
	if _, err := s.Items.Get(itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}
	exists, err := s.Carts.Exists(userID, itemID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInCart
	}
	return s.Carts.Add(userID, itemID)
}

func (s *CartService) Remove(userID, itemID int64) error {
	removed, err := s.Carts.Remove(userID, itemID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInCart
	}
	return nil
}

type CartView struct {
	Items []domain.Item
	Total float64
}

func (s *CartService) View(userID int64) (CartView, error) {
	items, err := s.Carts.Items(userID)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, it := range items {
		total += it.Price
	}
	return CartView{Items: items, Total: total}, nil
}
