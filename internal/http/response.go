package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorHandler converts errors bubbling out of handlers into the response
// envelope. Known application errors carry their own status code; anything
// unexpected is logged and reported as a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperrors.Exception
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
		if status == http.StatusNotFound {
			message = "Route not found"
		}
	default:
		c.Logger().Error(err)
	}

	_ = c.JSON(status, Response{Success: false, Message: message})
}
