package domain

type Item struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	ImagePath   string  `db:"image_path"`
	Type        string  `db:"item_type"`
	Gender      string  `db:"gender"`
	Description string  `db:"description"`
	CreatedAt   string  `db:"created_at"`
}

// ItemRecord is the flat JSON shape served by /getitems/:gender.
type ItemRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"image_path"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
}

func (i Item) Record() ItemRecord {
	return ItemRecord{
		ID:          i.ID,
		Name:        i.Name,
		Gender:      i.Gender,
		Price:       i.Price,
		ImagePath:   i.ImagePath,
		Type:        i.Type,
		Description: i.Description,
	}
}

type CartItem struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`
	ItemID int64 `db:"item_id"`
}

type Order struct {
	ID        int64   `db:"id"`
	UserID    int64   `db:"user_id"`
	Total     float64 `db:"total_price"`
	Number    int     `db:"order_number"` // random 6-digit display number, not unique
	Address   string  `db:"address"`
	City      string  `db:"city"`
	Country   string  `db:"country"`
	Phone     string  `db:"phone"`
	CreatedAt string  `db:"created_at"`
}
