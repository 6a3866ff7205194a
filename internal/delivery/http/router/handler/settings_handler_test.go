package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingsUsecase struct {
	site      *entity.SiteSettings
	page      *entity.PageSettings
	savedSite *entity.SiteSettings
	savedPage *entity.PageSettings
	err       error
}

func (s *stubSettingsUsecase) GetSiteSettings(context.Context) (*entity.SiteSettings, error) {
	return s.site, s.err
}

func (s *stubSettingsUsecase) SaveSiteSettings(_ context.Context, settings *entity.SiteSettings) (*entity.SiteSettings, error) {
	s.savedSite = settings

	return settings, s.err
}

func (s *stubSettingsUsecase) GetPageSettings(_ context.Context, page string) (*entity.PageSettings, error) {
	if s.page != nil {
		return s.page, s.err
	}

	return entity.DefaultPageSettings(page), s.err
}

func (s *stubSettingsUsecase) SavePageSettings(_ context.Context, settings *entity.PageSettings) (*entity.PageSettings, error) {
	s.savedPage = settings

	return settings, s.err
}

func newSettingsHandlerForTest(stub *stubSettingsUsecase) (*SettingsHandler, *echo.Echo) {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSettingsHandler(SettingsHandlerParams{SettingsUC: stub, Logger: logger}), e
}

func TestSettingsHandler_GetSiteSettings(t *testing.T) {
	stub := &stubSettingsUsecase{site: entity.DefaultSiteSettings()}
	h, e := newSettingsHandlerForTest(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/settings/site", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.GetSiteSettings(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			SiteName string `json:"site_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Storefront", body.Data.SiteName)
}

func TestSettingsHandler_SaveSiteSettings(t *testing.T) {
	stub := &stubSettingsUsecase{}
	h, e := newSettingsHandlerForTest(stub)

	payload := `{"site_name":"Fresh Corner","contact_email":"hello@freshcorner.example","ordering_open":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings/site", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SaveSiteSettings(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.savedSite)
	assert.Equal(t, "Fresh Corner", stub.savedSite.SiteName)
	assert.True(t, stub.savedSite.OrderingOpen)
}

func TestSettingsHandler_SaveSiteSettingsValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing site name", payload: `{"tagline":"no name"}`},
		{name: "malformed email", payload: `{"site_name":"Fresh Corner","contact_email":"not-an-email"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSettingsUsecase{}
			h, e := newSettingsHandlerForTest(stub)

			req := httptest.NewRequest(http.MethodPut, "/api/settings/site", strings.NewReader(tt.payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, h.SaveSiteSettings(e.NewContext(req, rec)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, stub.savedSite, "invalid input never reaches the use case")
		})
	}
}

func TestSettingsHandler_SavePageSettings(t *testing.T) {
	stub := &stubSettingsUsecase{}
	h, e := newSettingsHandlerForTest(stub)

	payload := `{"title":"Our Menu","is_visible":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings/pages/menu", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("page")
	c.SetParamValues("menu")

	require.NoError(t, h.SavePageSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.savedPage)
	assert.Equal(t, "menu", stub.savedPage.Page, "page name comes from the path, not the body")
	assert.Equal(t, "Our Menu", stub.savedPage.Title)
}
