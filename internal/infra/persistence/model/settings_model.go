package model

import "time"

// SiteSettingsModel is the GORM-specific struct for the 'site_settings'
// table. One row, addressed by the well-known id.
type SiteSettingsModel struct {
	ID           int64  `gorm:"primaryKey"`
	SiteName     string `gorm:"type:varchar(200)"`
	Tagline      string `gorm:"type:varchar(300)"`
	PrimaryColor string `gorm:"type:varchar(16)"`
	AccentColor  string `gorm:"type:varchar(16)"`
	Announcement string `gorm:"type:text"`
	ShowReviews  bool   `gorm:"not null;default:true"`
	ShowBlog     bool   `gorm:"not null;default:true"`
	OrderingOpen bool   `gorm:"not null;default:true"`
	ContactEmail string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(32)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}

// PageSettingsModel is the GORM-specific struct for the 'page_settings'
// table. One row per page name.
type PageSettingsModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Page         string `gorm:"type:varchar(100);unique;not null"`
	Title        string `gorm:"type:varchar(300)"`
	Subtitle     string `gorm:"type:varchar(300)"`
	HeroImageURL string `gorm:"type:text"`
	IsVisible    bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PageSettingsModel) TableName() string {
	return "page_settings"
}
