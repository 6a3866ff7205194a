package model

import "time"

// BlogPostModel is the GORM-specific struct for the 'blog_posts' table.
type BlogPostModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(300);not null"`
	Content     string `gorm:"type:text"`
	Excerpt     string `gorm:"type:text"`
	Author      string `gorm:"type:varchar(100)"`
	Category    string `gorm:"type:varchar(100);index"`
	IsPublished bool   `gorm:"not null;default:false"`
	IsFeatured  bool   `gorm:"not null;default:false"`
	Views       int64  `gorm:"not null;default:0"`
	Likes       int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}
