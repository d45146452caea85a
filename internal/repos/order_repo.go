package repos

import (
	"wearline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Place creates the order row and clears the user's cart in one transaction,
// so a crash between the two steps cannot leave a paid-for cart behind.
func (r *OrderRepo) Place(o domain.Order) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO orders(user_id,total_price,order_number,address,city,country,phone,created_at)
	  VALUES(?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, o.UserID, o.Total, o.Number, o.Address, o.City, o.Country, o.Phone)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE user_id=?`, o.UserID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *OrderRepo) ListByUser(userID int64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id,user_id,total_price,order_number,address,city,country,phone,created_at
	  FROM orders
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC
	`, userID)
	return out, err
}

// ListLatest returns recent orders across all users (admin overview).
func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id,user_id,total_price,order_number,address,city,country,phone,created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}
