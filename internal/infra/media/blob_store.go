// Package media stores uploaded images in a blob bucket addressed by a
// gocloud.dev URL, so local disk and cloud buckets are interchangeable
// through configuration.
package media

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs
	_ "gocloud.dev/blob/memblob"  // mem:// bucket URLs, used in tests
)

// blobStore implements service.MediaStore over a gocloud.dev bucket.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStore opens the bucket at the given URL.
func NewBlobStore(ctx context.Context, bucketURL, publicBaseURL string) (service.MediaStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Upload writes data under key, replacing any previous object.
func (s *blobStore) Upload(ctx context.Context, key, contentType string, data []byte) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	return errors.Wrapf(writer.Close(), "failed to finish %s", key)
}

// PublicURL returns the publicly resolvable URL for a stored key.
func (s *blobStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// Close releases the bucket handle.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// Params holds dependencies for the media store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the media store from configuration. Without a bucket URL the
// store is nil and the media service falls back to placeholder URLs.
func New(params Params) (service.MediaStore, error) {
	cfg := params.Config.Media
	logger := params.Logger

	if cfg == nil || cfg.BucketURL == "" {
		logger.Info("Media bucket not configured, uploads resolve to the placeholder")

		return nil, nil
	}

	store, err := NewBlobStore(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	logger.Info("Media bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing media bucket")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the media FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
