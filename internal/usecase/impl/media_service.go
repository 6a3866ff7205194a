package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPlaceholderURL = "/images/placeholder.png"
	defaultUploadFolder   = "uploads"
)

type mediaService struct {
	store  service.MediaStore
	config *config.Config
	logger *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store  service.MediaStore `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaService creates a new media service instance
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		store:  params.Store,
		config: params.Config,
		logger: params.Logger,
	}
}

// UploadImage stores the image under the given logical folder and returns
// its public URL. Any storage trouble degrades to the placeholder URL so an
// image hiccup never blocks saving the record the image belongs to.
func (s *mediaService) UploadImage(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	if s.store == nil {
		return s.placeholderURL(), nil
	}

	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = defaultUploadFolder
	}

	key := folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))

	if err := s.store.Upload(ctx, key, contentType, data); err != nil {
		s.logger.Warn("Image upload failed, falling back to placeholder",
			slog.String("filename", filename),
			slog.Any("error", err),
		)

		return s.placeholderURL(), nil
	}

	return s.store.PublicURL(key), nil
}

func (s *mediaService) placeholderURL() string {
	if s.config.Media != nil && s.config.Media.PlaceholderURL != "" {
		return s.config.Media.PlaceholderURL
	}

	return defaultPlaceholderURL
}
