package repos

import (
	"wearline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) Exists(userID, itemID int64) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id=? AND item_id=?`, userID, itemID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CartRepo) Add(userID, itemID int64) error {
	_, err := r.db.Exec(`INSERT INTO cart_items(user_id,item_id) VALUES(?,?)`, userID, itemID)
	return err
}

// Remove deletes the (user,item) row and reports whether one existed.
func (r *CartRepo) Remove(userID, itemID int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id=? AND item_id=?`, userID, itemID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Items joins the user's cart rows to the catalog. Rows pointing at deleted
// items drop out of the join.
func (r *CartRepo) Items(userID int64) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT i.id, i.name, i.price, COALESCE(i.image_path,'') AS image_path,
	         COALESCE(i.item_type,'') AS item_type, COALESCE(i.gender,'') AS gender,
	         COALESCE(i.description,'') AS description, i.created_at
	  FROM cart_items ci
	  JOIN items i ON i.id = ci.item_id
	  WHERE ci.user_id = ?
	  ORDER BY ci.id
	`, userID)
	return out, err
}

func (r *CartRepo) Count(userID int64) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id=?`, userID)
	return n, err
}

func (r *CartRepo) Clear(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id=?`, userID)
	return err
}
