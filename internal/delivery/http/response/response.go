package response

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "PRODUCT_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// sentinelMap pairs the façade's error sentinels with their API shapes.
var sentinelMap = []struct {
	sentinel error
	appErr   domainerrors.AppError
}{
	{repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound},
	{repository.ErrProductNotFound, domainerrors.ErrProductNotFound},
	{repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound},
	{repository.ErrReviewNotFound, domainerrors.ErrReviewNotFound},
	{repository.ErrPostNotFound, domainerrors.ErrPostNotFound},
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrDuplicateUser, domainerrors.ErrUserAlreadyExists},
	{repository.ErrConstraintViolated, domainerrors.ErrConstraintViolated},
	{impl.ErrInvalidOrderStatus, domainerrors.ErrInvalidOrderStatus},
	{impl.ErrInvalidStatusTransition, domainerrors.ErrInvalidStatusTransition},
	{impl.ErrInvalidRating, domainerrors.ErrInvalidRating},
	{impl.ErrInvalidRole, domainerrors.ErrInvalidRole},
}

// HandleAppError translates façade errors into API responses. Unrecognized
// errors pass through to the error middleware and surface as 500s.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	for _, mapping := range sentinelMap {
		if errors.Is(err, mapping.sentinel) {
			return Error(c, mapping.appErr.HTTPCode(), mapping.appErr.ErrorCode(), mapping.appErr.Message(), err.Error())
		}
	}

	return errors.WithStack(err)
}
