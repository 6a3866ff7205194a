package usecase

import "context"

// MediaUsecase defines the interface for image upload use cases
type MediaUsecase interface {
	// UploadImage stores the image under a fresh unique key inside the given
	// logical folder and returns its public URL. An empty folder falls back
	// to "uploads". When no bucket is configured, or the write fails, the
	// configured placeholder URL is returned instead of an error so the
	// admin console can keep going.
	UploadImage(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
}
