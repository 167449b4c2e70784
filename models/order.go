package models

import "time"

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

type Order struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	SessionID    string       `gorm:"index" json:"session_id"`
	Items        []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount  float64      `json:"total_amount"`
	ShippingCost float64      `json:"shipping_cost"`
	Customer     CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customer_info"`
	Status       string       `gorm:"default:created" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// OrderItem snapshots the product at order time so later catalog edits
// cannot change a placed order.
type OrderItem struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	OrderID       string  `gorm:"index" json:"order_id"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductImage  string  `json:"product_image"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
	Quantity      int     `json:"quantity"`
	PriceAtTime   float64 `json:"price_at_time"`
}
