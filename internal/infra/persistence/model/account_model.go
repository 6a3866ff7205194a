package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table. The id is an
// opaque string: an identity-provider subject or a generated uuid.
type UserModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Name      string `gorm:"type:varchar(100)"`
	Phone     string `gorm:"type:varchar(32)"`
	Role      string `gorm:"type:varchar(16);not null;default:'customer'"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
