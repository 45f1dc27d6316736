package domain

import "testing"

func TestValidTaskStatus(t *testing.T) {
	for _, status := range []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted} {
		if !ValidTaskStatus(status) {
			t.Errorf("status %q should be valid", status)
		}
	}
	for _, status := range []TaskStatus{"", "done", "PENDING", "archived"} {
		if ValidTaskStatus(status) {
			t.Errorf("status %q should be invalid", status)
		}
	}
}

func TestTaskPatchApply(t *testing.T) {
	task := Task{Title: "old", Description: "desc", Status: TaskStatusPending}

	title := "new"
	status := TaskStatusCompleted
	TaskPatch{Title: &title, Status: &status}.Apply(&task)

	if task.Title != "new" {
		t.Errorf("got title %q, want new", task.Title)
	}
	if task.Description != "desc" {
		t.Errorf("nil field must leave description untouched, got %q", task.Description)
	}
	if task.Status != TaskStatusCompleted {
		t.Errorf("got status %q, want completed", task.Status)
	}

	// Empty patch changes nothing.
	before := task
	TaskPatch{}.Apply(&task)
	if task != before {
		t.Error("empty patch must leave the task unchanged")
	}
}
