package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "Invalid status value",
	StatusCode: http.StatusBadRequest,
}
