package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo catalog if DB is empty (idempotent; safe to run every start)
	if err := seedItems(db); err != nil {
		return nil, err
	}
	// Ensure the admin account exists (idempotent)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  is_admin INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_nocase ON users(LOWER(username));

-- Items
CREATE TABLE IF NOT EXISTS items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  price NUMERIC NOT NULL CHECK (price >= 0),
  image_path TEXT,
  item_type TEXT,
  gender TEXT,
  description TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_items_gender ON items(gender);
CREATE INDEX IF NOT EXISTS idx_items_name   ON items(LOWER(name));

-- Cart rows: one (user,item) pairing per row. Duplicates are rejected by the
-- cart service at add time rather than by a DB constraint.
CREATE TABLE IF NOT EXISTS cart_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  item_id INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cart_items_user ON cart_items(user_id);

-- Orders. order_number is a random display number, not a key.
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  total_price NUMERIC NOT NULL,
  order_number INTEGER NOT NULL,
  address TEXT NOT NULL,
  city TEXT NOT NULL,
  country TEXT NOT NULL,
  phone TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id);

-- Sessions keyed by the 'sid' cookie
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id INTEGER NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedItems(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM items`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog items")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO items(name,price,image_path,item_type,gender,description) VALUES
	  ('Oxford Shirt',          39.90, 'uploads/oxford-shirt.jpg',   'shirt',   'men',    'Classic button-down oxford shirt.'),
	  ('Linen Summer Dress',    59.00, 'uploads/linen-dress.jpg',    'dress',   'women',  'Lightweight linen dress for warm days.'),
	  ('Denim Jacket',          89.50, 'uploads/denim-jacket.jpg',   'jacket',  'unisex', 'Stonewashed denim jacket.'),
	  ('Wool Overcoat',        149.00, 'uploads/wool-overcoat.jpg',  'coat',    'men',    'Mid-length wool blend overcoat.'),
	  ('Canvas Sneakers',       45.00, 'uploads/canvas-sneakers.jpg','shoes',   'unisex', 'Low-top canvas sneakers.')`)
	return tx.Commit()
}

// seedAdmin ensures the store administrator exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("ChangeMe!2024"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(username,password_hash,is_admin)
		VALUES('admin',?,1)
		ON CONFLICT(username) DO NOTHING
	`, string(h))
	return err
}
