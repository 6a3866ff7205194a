package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsForTest(t *testing.T, notifier *recordingNotifier) usecase.SettingsUsecase {
	t.Helper()

	return NewSettingsService(SettingsServiceParams{
		Local:    testLocal(t),
		Notifier: notifier,
		Logger:   testLogger(),
	})
}

func TestSettingsService_GetSiteSettingsBeforeFirstSave(t *testing.T) {
	settings := newSettingsForTest(t, &recordingNotifier{})

	site, err := settings.GetSiteSettings(context.Background())
	require.NoError(t, err, "an empty store yields the defaults, not an error")
	assert.Equal(t, entity.DefaultSiteSettings().SiteName, site.SiteName)
}

func TestSettingsService_SaveThenGetSiteSettings(t *testing.T) {
	notifier := &recordingNotifier{}
	settings := newSettingsForTest(t, notifier)
	ctx := context.Background()

	saved, err := settings.SaveSiteSettings(ctx, &entity.SiteSettings{SiteName: "Fresh Corner"})
	require.NoError(t, err)
	assert.Equal(t, entity.SettingsID, saved.ID)

	current, err := settings.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Corner", current.SiteName)

	assert.Equal(t, []string{"settings.updated"}, notifier.kinds())
}

func TestSettingsService_GetPageSettingsBeforeFirstSave(t *testing.T) {
	settings := newSettingsForTest(t, &recordingNotifier{})

	page, err := settings.GetPageSettings(context.Background(), "menu")
	require.NoError(t, err)
	assert.Equal(t, "menu", page.Page, "defaults carry the requested page name")
}

func TestSettingsService_SavePageSettingsPublishes(t *testing.T) {
	notifier := &recordingNotifier{}
	settings := newSettingsForTest(t, notifier)

	_, err := settings.SavePageSettings(context.Background(), &entity.PageSettings{Page: "home", Title: "Welcome"})
	require.NoError(t, err)
	assert.Equal(t, []string{"page_settings.updated"}, notifier.kinds())
}
