package errors

import "net/http"

var ErrRefreshTokenRequired = &Exception{
	Message:    "Refresh token required",
	StatusCode: http.StatusBadRequest,
}
