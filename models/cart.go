package models

import "time"

// CartItem is one cart line scoped to an anonymous browsing session.
// At most one line exists per (session, product, size, color); adding the
// same combination again increments Quantity instead.
type CartItem struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	SessionID     string    `gorm:"index" json:"session_id"`
	ProductID     string    `gorm:"index" json:"product_id"`
	SelectedSize  string    `json:"selected_size"`
	SelectedColor string    `json:"selected_color"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`

	// Product is attached when reading the cart, not persisted on the line.
	Product *Product `gorm:"-" json:"product,omitempty"`
}
