package errors

import "net/http"

var ErrAccessTokenRequired = &Exception{
	Message:    "Access token required",
	StatusCode: http.StatusUnauthorized,
}
