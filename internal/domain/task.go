package domain

import "time"

// TaskStatus enumerates lifecycle states for tasks. Any transition between
// the three values is legal; there is no workflow ordering.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether s is one of the known status values.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is the aggregate for user to-do items. Every task has exactly one
// owner; OwnerID is immutable after creation.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskWithOwner joins the owning user's display fields onto a task for
// admin listings.
type TaskWithOwner struct {
	Task
	OwnerName  string
	OwnerEmail string
}

// TaskPatch is the allow-list of caller-mutable task fields. Nil pointers
// leave the stored value untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// Apply merges the patch into the task.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
