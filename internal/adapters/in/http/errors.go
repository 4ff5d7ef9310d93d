package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"candydelivery/internal/generated/servers"
	"candydelivery/internal/pkg/errs"
)

// fail writes err as an Error body.
// notFoundStatus is used for lookup misses: 404 when the id is in the path,
// 400 when it comes from the request body.
func (s *Server) fail(ctx echo.Context, err error, notFoundStatus int) error {
	status := statusOf(err, notFoundStatus)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

func statusOf(err error, notFoundStatus int) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFoundStatus
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
