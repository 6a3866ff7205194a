// Package handler contains the HTTP handlers of the admin API. Handlers
// bind and validate input, call a use case, and shape the response; every
// data decision lives below them.
package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// parseID reads a numeric path parameter.
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}
