package errors

import "net/http"

var ErrInvalidPage = &Exception{
	Message:    "Page must be a positive number",
	StatusCode: http.StatusBadRequest,
}
