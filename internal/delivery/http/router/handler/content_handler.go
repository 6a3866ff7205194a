package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler holds dependencies for blog-related handlers
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// CreatePostRequest represents the request body for creating a blog post
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	IsPublished bool   `json:"is_published"`
	IsFeatured  bool   `json:"is_featured"`
}

// UpdatePostRequest represents a partial blog post update
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Excerpt     *string `json:"excerpt"`
	Author      *string `json:"author"`
	Category    *string `json:"category"`
	IsPublished *bool   `json:"is_published"`
	IsFeatured  *bool   `json:"is_featured"`
}

// ListPosts handles listing all blog posts
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.contentUC.ListPosts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
}

// GetPost handles retrieving a single blog post
func (h *ContentHandler) GetPost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	post, err := h.contentUC.GetPost(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post retrieved successfully")
}

// CreatePost handles creating a blog post
func (h *ContentHandler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.contentUC.CreatePost(c.Request().Context(), &entity.BlogPost{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		Category:    req.Category,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created, "Post created successfully")
}

// UpdatePost handles partially updating a blog post
func (h *ContentHandler) UpdatePost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	updated, err := h.contentUC.UpdatePost(c.Request().Context(), id, &repository.PostPatch{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		Category:    req.Category,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Post updated successfully")
}

// DeletePost handles deleting a blog post
func (h *ContentHandler) DeletePost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	if err := h.contentUC.DeletePost(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id}, "Post deleted successfully")
}

// RecordPostView handles bumping a post's view counter
func (h *ContentHandler) RecordPostView(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	post, err := h.contentUC.RecordPostView(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post view recorded successfully")
}

// LikePost handles bumping a post's like counter
func (h *ContentHandler) LikePost(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	post, err := h.contentUC.LikePost(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post liked successfully")
}
