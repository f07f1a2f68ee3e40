package domain

import "time"

// Product represents a single cosmetic catalog item
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"index" json:"name"`
	Price       float64   `json:"price"` // price in main currency units (e.g., dollars)
	Category    string    `gorm:"size:64" json:"category"`
	Description string    `json:"description"`
	Usages      string    `json:"usages"`
	ImageURL    string    `gorm:"size:1024" json:"image_url"` // URL to product image (optional)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
