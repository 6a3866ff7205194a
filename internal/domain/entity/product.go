package entity

import "time"

// Product is one sellable item. CategoryID is a loose reference to a
// Category; a product whose category was deleted still renders, just
// uncategorized.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	CategoryID  int64     `json:"category_id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
