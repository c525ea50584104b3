package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/commerce-api/internal/service"
)

// serviceError maps the service error taxonomy to transport outcomes.
func serviceError(l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		l.Warn(op, "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		l.Warn(op, "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		l.Warn(op, "status", 409, "error", err)
		return echo.NewHTTPError(http.StatusConflict, "conflict")
	default:
		l.Error(op, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
