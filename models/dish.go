package models

// Dish statuses. Dishes imported from Drive start as pending until an admin
// completes them; only active dishes appear on the public menu.
const (
	DishStatusPending = "pending"
	DishStatusActive  = "active"
)

// Dish represents a menu entry, stored under the durable key "dishes".
// Example: {"id": "dish_1b2c", "name": "Paneer Tikka", "description": "Char-grilled cottage cheese", "price": 249, "category": "starters", "image": "https://...", "status": "active"}
type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Status      string  `json:"status,omitempty"`
}

// MenuFilter narrows the public menu listing. Zero values mean "no filter".
type MenuFilter struct {
	Category string
	MinPrice float64
	MaxPrice float64
	SortBy   string // "price-low", "price-high" or empty for input order
}

// SyncStats reports the outcome of a Drive menu import.
// inserted = new dishes created, skipped = already known, total = files seen.
type SyncStats struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
