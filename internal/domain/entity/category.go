// Package entity contains the pure domain records of the storefront.
// Entities carry no persistence concerns; the model package mirrors them
// for the remote backend.
package entity

import "time"

// Category groups products on the storefront menu. SortOrder drives the
// display order; listings are returned sorted by it.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
