package errors

import "net/http"

var ErrTitleTooLong = &Exception{
	Message:    "Title must not exceed 255 characters",
	StatusCode: http.StatusBadRequest,
}
