package webapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/pkg/registration"
	"github.com/mergington/activities/pkg/stor"
)

// Detail texts returned to clients.
const (
	DetailActivityNotFound  = "Activity not found"
	DetailAlreadyRegistered = "Student is already signed up"
	DetailNotRegistered     = "Student is not signed up for this activity"
	DetailCapacityExceeded  = "Activity is full"
	DetailEmailRequired     = "Email is required"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the body of a successful signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

func statusAndDetail(err error) (int, string) {
	switch {
	case errors.Is(err, stor.ErrActivityNotFound):
		return http.StatusNotFound, DetailActivityNotFound
	case errors.Is(err, stor.ErrAlreadyRegistered):
		return http.StatusBadRequest, DetailAlreadyRegistered
	case errors.Is(err, stor.ErrNotRegistered):
		return http.StatusBadRequest, DetailNotRegistered
	case errors.Is(err, stor.ErrCapacityExceeded):
		return http.StatusBadRequest, DetailCapacityExceeded
	case errors.Is(err, registration.ErrInvalidEmail):
		return http.StatusBadRequest, DetailEmailRequired
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func writeError(ctx echo.Context, err error) error {
	status, detail := statusAndDetail(err)
	return ctx.JSON(status, ErrorResponse{Detail: detail})
}

// HTTPErrorHandler renders echo errors (unknown routes, bad methods) in the
// same {"detail": ...} shape as domain errors.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		} else {
			detail = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}

	_ = ctx.JSON(status, ErrorResponse{Detail: detail})
}
