package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const (
	userIDKey = "userID"
	emailKey  = "userEmail"
)

// Auth verifies the bearer access token and stores the caller's identity on
// the echo context. A missing token is 401; a present but invalid or expired
// one is 403.
func Auth(tokens *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return apperrors.ErrAccessTokenRequired
			}

			claims, err := tokens.VerifyAccessToken(token)
			if err != nil {
				return apperrors.ErrInvalidToken
			}

			c.Set(userIDKey, claims.UserID)
			c.Set(emailKey, claims.Email)

			return next(c)
		}
	}
}

// UserID returns the authenticated user's id, or "" when the request did not
// pass the Auth middleware.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

// Email returns the authenticated user's email, or "".
func Email(c echo.Context) string {
	email, _ := c.Get(emailKey).(string)
	return email
}
