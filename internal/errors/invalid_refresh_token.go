package errors

import "net/http"

var ErrInvalidRefreshToken = &Exception{
	Message:    "Invalid refresh token",
	StatusCode: http.StatusForbidden,
}
