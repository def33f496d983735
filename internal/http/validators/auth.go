package validators

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateRegisterRequest(email, password string) error {
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}
	if !emailRegex.MatchString(email) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid email format")
	}
	if len(password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "Password must be at least 6 characters long")
	}
	return nil
}

func ValidateLoginRequest(email, password string) error {
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}
	return nil
}
