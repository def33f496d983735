package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/constants"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

func (h *Handler) ListTasks(c echo.Context) error {
	if err := validators.ValidateTaskQuery(
		c.QueryParam("page"),
		c.QueryParam("limit"),
		c.QueryParam("status"),
	); err != nil {
		return err
	}

	params := services.ListParams{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Status: constants.TaskStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	}

	tasks, pagination, err := h.taskService.List(c.Request().Context(), middleware.UserID(c), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data: echo.Map{
			"tasks":      toTaskResponses(tasks),
			"pagination": pagination,
		},
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetByID(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    toTaskResponse(task),
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(req.Title, req.Status); err != nil {
		return err
	}

	status := constants.TaskStatus("")
	if req.Status != nil {
		status = constants.TaskStatus(*req.Status)
	}

	task, err := h.taskService.Create(c.Request().Context(), middleware.UserID(c), req.Title, req.Description, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Task created successfully",
		Data:    toTaskResponse(task),
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(req.Title, req.Status); err != nil {
		return err
	}

	params := services.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := constants.TaskStatus(*req.Status)
		params.Status = &status
	}

	task, err := h.taskService.Update(c.Request().Context(), middleware.UserID(c), c.Param("id"), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Task updated successfully",
		Data:    toTaskResponse(task),
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Task deleted successfully",
	})
}

func (h *Handler) ToggleTask(c echo.Context) error {
	task, err := h.taskService.ToggleStatus(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Task status toggled successfully",
		Data:    toTaskResponse(task),
	})
}

func queryInt(c echo.Context, name string, defaultVal int) int {
	v := c.QueryParam(name)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
