package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lucifer9973/task-manager-api/internal/domain"
	"github.com/lucifer9973/task-manager-api/internal/repository"
	apperrors "github.com/lucifer9973/task-manager-api/pkg/util"
)

// UserDetail bundles a user with their tasks for the admin user view.
type UserDetail struct {
	User  *domain.User
	Tasks []domain.Task
}

// Stats aggregates system-wide counts. Counts are computed fresh on every
// call from independent queries; the identity
// pending + inProgress + completed == totalTasks holds per snapshot.
type Stats struct {
	TotalUsers int64
	TotalTasks int64
	Pending    int64
	InProgress int64
	Completed  int64
}

// AdminService implements the cross-user management operations. Callers
// must already have passed the admin role gate.
type AdminService struct {
	users repository.UserRepository
	tasks repository.TaskRepository
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository, tasks repository.TaskRepository) *AdminService {
	return &AdminService{users: users, tasks: tasks}
}

// ListUsers returns all users, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// ListTasks returns all tasks with owner display fields, newest first.
func (s *AdminService) ListTasks(ctx context.Context) ([]domain.TaskWithOwner, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tasks, nil
}

// GetUserDetail returns a user together with their tasks, newest first.
func (s *AdminService) GetUserDetail(ctx context.Context, userID string) (*UserDetail, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, apperrors.MapError(err)
	}

	tasks, err := s.tasks.ListByOwnerDesc(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &UserDetail{User: user, Tasks: tasks}, nil
}

// UpdateTask merges the patch into any user's task, no ownership filter.
func (s *AdminService) UpdateTask(ctx context.Context, taskID string, patch domain.TaskPatch) (*domain.Task, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Task not found")
		}
		return nil, apperrors.MapError(err)
	}

	patch.Apply(task)
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// DeleteTask removes any user's task.
func (s *AdminService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Task not found")
		}
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteUser removes a user and all their tasks. The repository runs both
// deletes in one transaction, so the cascade cannot be left half applied.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.DeleteCascade(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User not found")
		}
		return apperrors.MapError(err)
	}
	return nil
}

// GetStats computes the system-wide counters.
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.TotalTasks, err = s.tasks.Count(ctx); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.Pending, err = s.tasks.CountByStatus(ctx, domain.TaskStatusPending); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.InProgress, err = s.tasks.CountByStatus(ctx, domain.TaskStatusInProgress); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.Completed, err = s.tasks.CountByStatus(ctx, domain.TaskStatusCompleted); err != nil {
		return nil, apperrors.MapError(err)
	}

	return stats, nil
}
