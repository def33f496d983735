package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"task-tracker.com/task-tracker/internal/auth"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, tokens *auth.Manager, limiterStore ratelimit.Store, rateLimitPerMinute int) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.CORS())
	e.Use(middleware.RateLimiter(limiterStore, rateLimitPerMinute))

	requireAuth := middleware.Auth(tokens)

	e.GET("/health", h.Health)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.RegisterUser)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/refresh", h.Refresh)
	authGroup.POST("/logout", h.Logout, requireAuth)

	tasks := e.Group("/tasks", requireAuth)
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PATCH("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.PATCH("/:id/toggle", h.ToggleTask)
}
