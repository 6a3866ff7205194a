package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMediaStore struct {
	uploadErr error
	lastKey   string
	lastType  string
	lastData  []byte
}

func (s *stubMediaStore) Upload(_ context.Context, key, contentType string, data []byte) error {
	s.lastKey = key
	s.lastType = contentType
	s.lastData = data

	return s.uploadErr
}

func (s *stubMediaStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (s *stubMediaStore) Close() error { return nil }

func TestMediaService_UploadImage(t *testing.T) {
	store := &stubMediaStore{}
	media := NewMediaService(MediaServiceParams{
		Store:  store,
		Config: &config.Config{},
		Logger: testLogger(),
	})

	url, err := media.UploadImage(context.Background(), "", "photo.JPG", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/uploads/"), "empty folder defaults to uploads")
	assert.True(t, strings.HasSuffix(store.lastKey, ".jpg"), "extension is kept, lowercased")
	assert.Equal(t, "image/jpeg", store.lastType)
	assert.Equal(t, []byte("jpeg-bytes"), store.lastData)
}

func TestMediaService_UploadImageIntoFolder(t *testing.T) {
	store := &stubMediaStore{}
	media := NewMediaService(MediaServiceParams{
		Store:  store,
		Config: &config.Config{},
		Logger: testLogger(),
	})

	url, err := media.UploadImage(context.Background(), "/products/", "bottle.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(store.lastKey, "products/"), "surrounding slashes are trimmed")
	assert.NotContains(t, store.lastKey, "//")
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/products/"))
}

func TestMediaService_NoStoreYieldsPlaceholder(t *testing.T) {
	media := NewMediaService(MediaServiceParams{
		Config: &config.Config{},
		Logger: testLogger(),
	})

	url, err := media.UploadImage(context.Background(), "uploads", "photo.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, defaultPlaceholderURL, url)
}

func TestMediaService_UploadFailureYieldsPlaceholder(t *testing.T) {
	media := NewMediaService(MediaServiceParams{
		Store:  &stubMediaStore{uploadErr: errors.New("bucket unavailable")},
		Config: &config.Config{},
		Logger: testLogger(),
	})

	url, err := media.UploadImage(context.Background(), "uploads", "photo.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err, "storage trouble never blocks the caller")
	assert.Equal(t, defaultPlaceholderURL, url)
}

func TestMediaService_ConfiguredPlaceholder(t *testing.T) {
	media := NewMediaService(MediaServiceParams{
		Config: &config.Config{Media: &config.MediaConfig{PlaceholderURL: "/static/no-image.png"}},
		Logger: testLogger(),
	})

	url, err := media.UploadImage(context.Background(), "uploads", "photo.png", "image/png", nil)
	require.NoError(t, err)
	assert.Equal(t, "/static/no-image.png", url)
}
