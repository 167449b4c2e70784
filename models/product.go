package models

import (
	"time"
)

type Product struct {
	ID            string   `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"` // set when the product is on sale
	Description   string   `json:"description"`
	Image         string   `gorm:"not null" json:"image"`
	Category      string   `gorm:"index" json:"category"`
	IsOnSale      bool     `gorm:"index" json:"is_on_sale"`
	Sizes         []string `gorm:"serializer:json" json:"sizes"`
	Colors        []string `gorm:"serializer:json" json:"colors"`
	Stock         int      `gorm:"default:100" json:"stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
