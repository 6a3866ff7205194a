package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]int{"id": 1}, ""))

	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, http.StatusOK, body.Code)
	assert.Equal(t, "Success", body.Message)
	assert.Nil(t, body.Error)
}

func TestHandleAppError_Sentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		errorCode  string
	}{
		{
			name:       "product not found",
			err:        repository.ErrProductNotFound,
			statusCode: http.StatusNotFound,
			errorCode:  domainerrors.ErrProductNotFound.ErrorCode(),
		},
		{
			name:       "wrapped sentinel still matches",
			err:        errors.Wrap(repository.ErrOrderNotFound, "update order"),
			statusCode: http.StatusNotFound,
			errorCode:  domainerrors.ErrOrderNotFound.ErrorCode(),
		},
		{
			name:       "duplicate user maps to conflict",
			err:        repository.ErrDuplicateUser,
			statusCode: http.StatusConflict,
			errorCode:  domainerrors.ErrUserAlreadyExists.ErrorCode(),
		},
		{
			name:       "constraint violation maps to unprocessable entity",
			err:        errors.Wrap(repository.ErrConstraintViolated, "category 99 does not exist"),
			statusCode: http.StatusUnprocessableEntity,
			errorCode:  domainerrors.ErrConstraintViolated.ErrorCode(),
		},
		{
			name:       "invalid status transition maps to conflict",
			err:        errors.Wrap(impl.ErrInvalidStatusTransition, "delivered to pending"),
			statusCode: http.StatusConflict,
			errorCode:  domainerrors.ErrInvalidStatusTransition.ErrorCode(),
		},
		{
			name:       "invalid rating maps to bad request",
			err:        impl.ErrInvalidRating,
			statusCode: http.StatusBadRequest,
			errorCode:  domainerrors.ErrInvalidRating.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, HandleAppError(c, tt.err))

			body := decodeResponse(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.statusCode, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.errorCode, body.Error.Code)
		})
	}
}

func TestHandleAppError_UnknownErrorPassesThrough(t *testing.T) {
	c, rec := newTestContext()

	err := HandleAppError(c, errors.New("disk on fire"))
	require.Error(t, err, "unrecognized errors go to the error middleware")
	assert.Zero(t, rec.Body.Len(), "nothing was written yet")
}
