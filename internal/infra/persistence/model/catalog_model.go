// Package model contains the GORM-specific structs mirroring the remote
// backend's tables. Exported so the GORM Gen tool can reference them.
package model

import "time"

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Color       string `gorm:"type:varchar(16)"`
	Icon        string `gorm:"type:varchar(16)"`
	IsActive    bool   `gorm:"not null;default:true"`
	SortOrder   int    `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
// CategoryID is a loose reference; the backend does not enforce it.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(200);not null"`
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	CategoryID  int64   `gorm:"index"`
	Description string  `gorm:"type:text"`
	ImageURL    string  `gorm:"type:text"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
