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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for user account handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	ID    string `json:"id"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// ListUsers handles listing all users
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.accountUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// CreateUser handles creating a user
func (h *AccountHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.accountUC.CreateUser(c.Request().Context(), &entity.User{
		ID:       req.ID,
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     entity.Role(req.Role),
		IsActive: true,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created, "User created successfully")
}

// UpdateUser handles partially updating a user
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	patch := &repository.UserPatch{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		patch.Role = &role
	}

	updated, err := h.accountUC.UpdateUser(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "User updated successfully")
}

// DeleteUser handles deleting a user
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.accountUC.DeleteUser(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id}, "User deleted successfully")
}
