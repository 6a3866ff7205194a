package entity

import "time"

// SettingsID is the well-known identifier singleton settings rows are stored
// under. Settings are upserted in place and never duplicated.
const SettingsID int64 = 1

// SiteSettings holds presentation configuration for the whole storefront.
// Conceptually a single row addressed by SettingsID.
type SiteSettings struct {
	ID            int64     `json:"id"`
	SiteName      string    `json:"site_name"`
	Tagline       string    `json:"tagline"`
	PrimaryColor  string    `json:"primary_color"`
	AccentColor   string    `json:"accent_color"`
	Announcement  string    `json:"announcement"`
	ShowReviews   bool      `json:"show_reviews"`
	ShowBlog      bool      `json:"show_blog"`
	OrderingOpen  bool      `json:"ordering_open"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PageSettings holds presentation configuration for one named page.
// One row per page, upserted by page name.
type PageSettings struct {
	ID           int64     `json:"id"`
	Page         string    `json:"page"` // Well-known page key, e.g. "home", "menu".
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	HeroImageURL string    `json:"hero_image_url"`
	IsVisible    bool      `json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the in-memory template used before the first
// save, so the UI always has something to render.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:           SettingsID,
		SiteName:     "Storefront",
		Tagline:      "Fresh picks, delivered fast",
		PrimaryColor: "#2f855a",
		AccentColor:  "#f6ad55",
		ShowReviews:  true,
		ShowBlog:     true,
		OrderingOpen: true,
	}
}

// DefaultPageSettings returns the render template for a page with no stored
// settings yet.
func DefaultPageSettings(page string) *PageSettings {
	return &PageSettings{
		ID:        SettingsID,
		Page:      page,
		Title:     page,
		IsVisible: true,
	}
}
