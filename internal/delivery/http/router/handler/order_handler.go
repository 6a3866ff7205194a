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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	Total           float64 `json:"total" validate:"gte=0"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"payment_method"`
	Notes           string  `json:"notes"`
}

// UpdateOrderRequest represents a partial order update
type UpdateOrderRequest struct {
	CustomerName    *string  `json:"customer_name"`
	CustomerPhone   *string  `json:"customer_phone"`
	CustomerAddress *string  `json:"customer_address"`
	Total           *float64 `json:"total" validate:"omitempty,gte=0"`
	Status          *string  `json:"status"`
	PaymentMethod   *string  `json:"payment_method"`
	Notes           *string  `json:"notes"`
}

// ListOrders handles listing all orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles retrieving a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// CreateOrder handles creating an order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.orderUC.CreateOrder(c.Request().Context(), &entity.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Total:           req.Total,
		Status:          entity.OrderStatus(req.Status),
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created, "Order created successfully")
}

// UpdateOrder handles partially updating an order
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	patch := &repository.OrderPatch{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Total:           req.Total,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		status := entity.OrderStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := h.orderUC.UpdateOrder(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Order updated successfully")
}

// DeleteOrder handles deleting an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id}, "Order deleted successfully")
}
