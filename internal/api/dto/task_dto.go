package dto

import (
	"time"

	"github.com/lucifer9973/task-manager-api/internal/domain"
	"github.com/lucifer9973/task-manager-api/internal/service"
)

// CreateTaskRequest payload for new tasks. Status and owner are not
// accepted from the client.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest carries the allow-listed mutable task fields. Absent
// fields leave the stored value untouched; anything else in the body is
// dropped at decode time.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Status != nil {
		status := domain.TaskStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// TaskResponse is the public view of a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTaskResponse maps a domain task into its public view.
func NewTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTaskResponses maps a slice of tasks.
func NewTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}

// TaskOwnerResponse is the owner display view joined onto admin listings.
type TaskOwnerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskWithOwnerResponse is the admin view of a task.
type TaskWithOwnerResponse struct {
	TaskResponse
	Owner TaskOwnerResponse `json:"owner"`
}

// NewTaskWithOwnerResponses maps joined tasks for the admin listing.
func NewTaskWithOwnerResponses(tasks []domain.TaskWithOwner) []TaskWithOwnerResponse {
	out := make([]TaskWithOwnerResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, TaskWithOwnerResponse{
			TaskResponse: NewTaskResponse(&tasks[i].Task),
			Owner: TaskOwnerResponse{
				Name:  tasks[i].OwnerName,
				Email: tasks[i].OwnerEmail,
			},
		})
	}
	return out
}

// UserDetailResponse bundles a user with their tasks.
type UserDetailResponse struct {
	User  UserResponse   `json:"user"`
	Tasks []TaskResponse `json:"tasks"`
}

// TaskStatusCounts breaks task totals down by status.
type TaskStatusCounts struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

// StatsResponse is the admin statistics payload.
type StatsResponse struct {
	TotalUsers int64            `json:"totalUsers"`
	TotalTasks int64            `json:"totalTasks"`
	TaskStatus TaskStatusCounts `json:"taskStatus"`
}

// NewStatsResponse maps service stats into the response shape.
func NewStatsResponse(s *service.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers: s.TotalUsers,
		TotalTasks: s.TotalTasks,
		TaskStatus: TaskStatusCounts{
			Pending:    s.Pending,
			InProgress: s.InProgress,
			Completed:  s.Completed,
		},
	}
}
