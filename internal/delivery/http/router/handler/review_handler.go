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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest represents the request body for submitting a review
type SubmitReviewRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	ProductID     int64  `json:"product_id"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

// UpdateReviewRequest represents a partial review update
type UpdateReviewRequest struct {
	CustomerName  *string `json:"customer_name"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
	ProductID     *int64  `json:"product_id"`
	Rating        *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment       *string `json:"comment"`
}

// ModerationRequest toggles a review's moderation flag
type ModerationRequest struct {
	Value bool `json:"value"`
}

// ListReviews handles listing all reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// SubmitReview handles submitting a new review
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.reviewUC.SubmitReview(c.Request().Context(), &entity.Review{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ProductID:     req.ProductID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created, "Review submitted successfully")
}

// UpdateReview handles partially updating a review
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := h.reviewUC.UpdateReview(c.Request().Context(), id, &repository.ReviewPatch{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ProductID:     req.ProductID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Review updated successfully")
}

// SetReviewApproval handles toggling a review's approval
func (h *ReviewHandler) SetReviewApproval(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req ModerationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	updated, err := h.reviewUC.SetReviewApproval(c.Request().Context(), id, req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Review approval updated successfully")
}

// SetReviewFeatured handles toggling a review's featured placement
func (h *ReviewHandler) SetReviewFeatured(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req ModerationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	updated, err := h.reviewUC.SetReviewFeatured(c.Request().Context(), id, req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Review feature flag updated successfully")
}

// DeleteReview handles deleting a review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id}, "Review deleted successfully")
}
