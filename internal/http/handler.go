package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	authService *services.AuthService
	taskService *services.TaskService
}

func NewHandler(authService *services.AuthService, taskService *services.TaskService) *Handler {
	return &Handler{
		authService: authService,
		taskService: taskService,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Server is running",
	})
}
