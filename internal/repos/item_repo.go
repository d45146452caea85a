package repos

import (
	"wearline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) Insert(it domain.Item) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO items(name,price,image_path,item_type,gender,description)
	  VALUES(?,?,?,?,?,?)
	`, it.Name, it.Price, it.ImagePath, it.Type, it.Gender, it.Description)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ItemRepo) Get(id int64) (domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `
	  SELECT id,name,price,COALESCE(image_path,'') AS image_path,
	         COALESCE(item_type,'') AS item_type, COALESCE(gender,'') AS gender,
	         COALESCE(description,'') AS description, created_at
	  FROM items WHERE id=?
	`, id)
	return it, err
}

func (r *ItemRepo) NameExists(name string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM items WHERE LOWER(name)=LOWER(?)`, name); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ItemRepo) ByGender(gender string) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT id,name,price,COALESCE(image_path,'') AS image_path,
	         COALESCE(item_type,'') AS item_type, COALESCE(gender,'') AS gender,
	         COALESCE(description,'') AS description, created_at
	  FROM items
	  WHERE gender = ?
	  ORDER BY created_at DESC
	`, gender)
	return out, err
}

func (r *ItemRepo) ListLatest(limit int) ([]domain.Item, error) {
	if limit <= 0 {
		limit = 24
	}
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT id,name,price,COALESCE(image_path,'') AS image_path,
	         COALESCE(item_type,'') AS item_type, COALESCE(gender,'') AS gender,
	         COALESCE(description,'') AS description, created_at
	  FROM items
	  ORDER BY created_at DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *ItemRepo) Search(q, itemType, gender string, limit, offset int) ([]domain.Item, error) {
	where := `1=1`
	args := []any{}
	if q != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if itemType != "" {
		where += ` AND item_type = ?`
		args = append(args, itemType)
	}
	if gender != "" {
		where += ` AND gender = ?`
		args = append(args, gender)
	}

	sql := `
	  SELECT id,name,price,COALESCE(image_path,'') AS image_path,
	         COALESCE(item_type,'') AS item_type, COALESCE(gender,'') AS gender,
	         COALESCE(description,'') AS description, created_at
	  FROM items
	  WHERE ` + where + `
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Item
	err := r.db.Select(&out, sql, args...)
	return out, err
}
