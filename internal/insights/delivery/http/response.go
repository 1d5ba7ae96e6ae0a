package http

import (
	"net/http"

	"golang-trading-insights/internal/insights/dto"
	"golang-trading-insights/internal/insights/service"
	"golang-trading-insights/pkg/restclient"

	"github.com/labstack/echo/v4"
)

// statusFor maps a failed Result onto the status returned to callers.
func statusFor(err error) int {
	switch {
	case service.IsValidation(err):
		return http.StatusBadRequest
	case service.IsDomainNotFound(err), service.IsNoBotsFound(err):
		return http.StatusNotFound
	}
	if code := restclient.StatusCode(err); code >= 400 && code < 500 {
		return code
	}
	return http.StatusBadGateway
}

func respond[T any](c echo.Context, status int, r service.Result[T]) error {
	if r.IsError() {
		return c.JSON(statusFor(r.Err), dto.ErrorResponse{Error: r.Message})
	}
	return c.JSON(status, r.Data)
}
