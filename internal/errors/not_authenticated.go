package errors

import "net/http"

var ErrNotAuthenticated = &Exception{
	Message:    "User not authenticated",
	StatusCode: http.StatusUnauthorized,
}
