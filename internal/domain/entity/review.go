package entity

import "time"

// Review is a customer rating for a product. New reviews start unapproved
// and only show on the storefront once an admin approves them.
type Review struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ProductID     int64     `json:"product_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	IsApproved    bool      `json:"is_approved"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
