package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/ratelimit"
)

func RateLimiter(store ratelimit.Store, limit int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := store.Incr(c.Request().Context(), c.RealIP())
			if err != nil {
				// Counter errors do not block traffic.
				c.Logger().Error(err)
				return next(c)
			}

			if count > int64(limit) {
				return apperrors.ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
