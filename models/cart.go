package models

// LineItem represents one dish line in a user's cart.
// At most one LineItem per dish id exists within a cart; adding the same
// dish again increments Quantity instead of appending a duplicate line.
type LineItem struct {
	ItemID     string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	Restaurant string  `json:"restaurant"`
}

// Cart is the ordered list of line items owned by one user. It is persisted
// under the key "cart_{userId}" as a plain JSON array, so the type is just
// a slice.
type Cart []LineItem

// TotalQuantity returns the number of units across all lines (the cart badge).
func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c {
		q := item.Quantity
		if q == 0 {
			q = 1
		}
		total += q
	}
	return total
}

// AddItemRequest represents the request body for adding a dish to the cart.
// Example: {"id": "dish_42", "name": "Paneer Tikka", "price": 249, "image": "https://...", "restaurant": "Food Express"}
type AddItemRequest struct {
	ItemID     string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
	Restaurant string  `json:"restaurant,omitempty"`
}

// CartResponse represents the cart plus its computed totals.
type CartResponse struct {
	Items  Cart    `json:"items"`
	Totals *Totals `json:"totals"`
	Count  int     `json:"count"`
}
