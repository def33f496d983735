package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateCreateTaskRequest(title string, status *string) error {
	if strings.TrimSpace(title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title is required")
	}
	if len(title) > 255 {
		return apperrors.ErrTitleTooLong
	}
	if status != nil && !constants.TaskStatus(*status).IsValid() {
		return apperrors.ErrInvalidStatus
	}
	return nil
}

func ValidateUpdateTaskRequest(title, status *string) error {
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "Title cannot be empty")
		}
		if len(*title) > 255 {
			return apperrors.ErrTitleTooLong
		}
	}
	if status != nil && !constants.TaskStatus(*status).IsValid() {
		return apperrors.ErrInvalidStatus
	}
	return nil
}

func ValidateTaskQuery(page, limit, status string) error {
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return apperrors.ErrInvalidPage
		}
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > 100 {
			return apperrors.ErrInvalidLimit
		}
	}
	if status != "" && !constants.TaskStatus(status).IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status filter")
	}
	return nil
}
