package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler holds dependencies for settings handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// SaveSiteSettingsRequest represents the request body for saving site settings
type SaveSiteSettingsRequest struct {
	SiteName     string `json:"site_name" validate:"required"`
	Tagline      string `json:"tagline"`
	PrimaryColor string `json:"primary_color"`
	AccentColor  string `json:"accent_color"`
	Announcement string `json:"announcement"`
	ShowReviews  bool   `json:"show_reviews"`
	ShowBlog     bool   `json:"show_blog"`
	OrderingOpen bool   `json:"ordering_open"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

// SavePageSettingsRequest represents the request body for saving page settings
type SavePageSettingsRequest struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	HeroImageURL string `json:"hero_image_url"`
	IsVisible    bool   `json:"is_visible"`
}

// GetSiteSettings handles retrieving the site settings
func (h *SettingsHandler) GetSiteSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSiteSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Site settings retrieved successfully")
}

// SaveSiteSettings handles upserting the site settings
func (h *SettingsHandler) SaveSiteSettings(c echo.Context) error {
	var req SaveSiteSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	saved, err := h.settingsUC.SaveSiteSettings(c.Request().Context(), &entity.SiteSettings{
		SiteName:     req.SiteName,
		Tagline:      req.Tagline,
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
		Announcement: req.Announcement,
		ShowReviews:  req.ShowReviews,
		ShowBlog:     req.ShowBlog,
		OrderingOpen: req.OrderingOpen,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, saved, "Site settings saved successfully")
}

// GetPageSettings handles retrieving one page's settings
func (h *SettingsHandler) GetPageSettings(c echo.Context) error {
	page := c.Param("page")
	if page == "" {
		return response.BadRequest(c, "INVALID_PAGE", "Invalid page name")
	}

	settings, err := h.settingsUC.GetPageSettings(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Page settings retrieved successfully")
}

// SavePageSettings handles upserting one page's settings
func (h *SettingsHandler) SavePageSettings(c echo.Context) error {
	page := c.Param("page")
	if page == "" {
		return response.BadRequest(c, "INVALID_PAGE", "Invalid page name")
	}

	var req SavePageSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	saved, err := h.settingsUC.SavePageSettings(c.Request().Context(), &entity.PageSettings{
		Page:         page,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		HeroImageURL: req.HeroImageURL,
		IsVisible:    req.IsVisible,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, saved, "Page settings saved successfully")
}
