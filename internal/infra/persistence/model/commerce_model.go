package model

import "time"

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	CustomerName    string  `gorm:"type:varchar(200);not null"`
	CustomerPhone   string  `gorm:"type:varchar(32)"`
	CustomerAddress string  `gorm:"type:text"`
	Total           float64 `gorm:"type:decimal(10,2);not null"`
	Status          string  `gorm:"type:varchar(16);not null;default:'pending';index"`
	PaymentMethod   string  `gorm:"type:varchar(32)"`
	Notes           string  `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	CustomerName  string `gorm:"type:varchar(200);not null"`
	CustomerEmail string `gorm:"type:varchar(255)"`
	ProductID     int64  `gorm:"index"`
	Rating        int    `gorm:"not null"`
	Comment       string `gorm:"type:text"`
	IsApproved    bool   `gorm:"not null;default:false"`
	IsFeatured    bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
