package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lucifer9973/task-manager-api/internal/domain"
	"github.com/lucifer9973/task-manager-api/internal/repository"
	apperrors "github.com/lucifer9973/task-manager-api/pkg/util"
)

// The not-found message deliberately conflates "doesn't exist" with "not
// yours" so callers cannot probe for other users' task ids.
const taskNotFoundOrDenied = "Task not found or access denied"

// TaskService implements the self-service task operations. Every lookup
// and mutation is scoped to the calling user's ownership.
type TaskService struct {
	tasks repository.TaskRepository
}

// NewTaskService builds the service.
func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns all tasks owned by the user, in insertion order.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tasks, nil
}

// Create stores a new task for the user. Status always starts at pending
// and the owner is always the caller, regardless of input.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string) (*domain.Task, error) {
	if title == "" {
		return nil, apperrors.NewValidationError("Title is required", nil)
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusPending,
		OwnerID:     ownerID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// Update merges the patch into a task the user owns and persists it.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, patch domain.TaskPatch) (*domain.Task, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(taskNotFoundOrDenied)
		}
		return nil, apperrors.MapError(err)
	}

	patch.Apply(task)
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// Delete removes a task the user owns.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.tasks.DeleteByIDAndOwner(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound(taskNotFoundOrDenied)
		}
		return apperrors.MapError(err)
	}
	return nil
}

func validatePatch(patch domain.TaskPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return apperrors.NewValidationError("Title cannot be empty", nil)
	}
	if patch.Status != nil && !domain.ValidTaskStatus(*patch.Status) {
		return apperrors.NewValidationError("Invalid task status", map[string]any{"status": *patch.Status})
	}
	return nil
}
