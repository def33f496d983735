package services

import (
	"context"
	"errors"
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	maxTitleLen  = 255
)

// ListParams selects one page of a user's tasks.
type ListParams struct {
	Page   int
	Limit  int
	Status constants.TaskStatus
	Search string
}

// UpdateParams carries a partial task update; nil fields are left untouched.
type UpdateParams struct {
	Title       *string
	Description *string
	Status      *constants.TaskStatus
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, userID string, params ListParams) ([]model.Task, *Pagination, error) {
	page := params.Page
	if page < 1 {
		page = defaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := repository.TaskFilter{Status: params.Status, Search: params.Search}

	tasks, total, err := s.repo.List(ctx, userID, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	pagination := &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	return tasks, pagination, nil
}

func (s *TaskService) GetByID(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, userID, title string, description *string, status constants.TaskStatus) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if len(title) > maxTitleLen {
		return nil, apperrors.ErrTitleTooLong
	}

	if status == "" {
		status = constants.StatusPending
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if description != nil {
		trimmed := strings.TrimSpace(*description)
		description = &trimmed
	}

	return s.repo.Create(ctx, userID, title, description, status)
}

func (s *TaskService) Update(ctx context.Context, userID, id string, params UpdateParams) (*model.Task, error) {
	task, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, apperrors.ErrTitleRequired
		}
		if len(title) > maxTitleLen {
			return nil, apperrors.ErrTitleTooLong
		}
		task.Title = title
	}
	if params.Description != nil {
		trimmed := strings.TrimSpace(*params.Description)
		task.Description = &trimmed
	}
	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		task.Status = *params.Status
	}

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}
	return nil
}

// ToggleStatus flips COMPLETED to PENDING; any other status, IN_PROGRESS
// included, goes to COMPLETED. IN_PROGRESS is not round-tripped.
func (s *TaskService) ToggleStatus(ctx context.Context, userID, id string) (*model.Task, error) {
	task, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if task.Status == constants.StatusCompleted {
		task.Status = constants.StatusPending
	} else {
		task.Status = constants.StatusCompleted
	}

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}
