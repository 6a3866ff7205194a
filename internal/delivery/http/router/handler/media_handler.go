package handler

import (
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler holds dependencies for image upload handlers
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// UploadImage handles a multipart image upload and returns the public URL
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Form field 'image' is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return response.BadRequest(c, "FILE_TOO_LARGE", "Image exceeds the upload size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	url, err := h.mediaUC.UploadImage(
		c.Request().Context(),
		folder,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}
