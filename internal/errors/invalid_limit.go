package errors

import "net/http"

var ErrInvalidLimit = &Exception{
	Message:    "Limit must be between 1 and 100",
	StatusCode: http.StatusBadRequest,
}
