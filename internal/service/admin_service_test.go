package service

import (
	"context"
	"testing"

	"github.com/lucifer9973/task-manager-api/internal/domain"
	"github.com/lucifer9973/task-manager-api/internal/repository/repositorytest"
	apperrors "github.com/lucifer9973/task-manager-api/pkg/util"
)

func newAdminFixture(t *testing.T) (*AdminService, *TaskService, *repositorytest.Store) {
	t.Helper()
	store := repositorytest.NewStore()
	return NewAdminService(store.Users(), store.Tasks()), NewTaskService(store.Tasks()), store
}

func TestListUsersNewestFirst(t *testing.T) {
	admin, _, store := newAdminFixture(t)
	ctx := context.Background()

	seedUser(t, store, "first@example.com")
	seedUser(t, store, "second@example.com")

	users, err := admin.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Email != "second@example.com" {
		t.Fatalf("got %q first, want the newest user", users[0].Email)
	}
}

func TestListTasksJoinsOwner(t *testing.T) {
	admin, tasks, store := newAdminFixture(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice@example.com")
	if _, err := tasks.Create(ctx, alice.ID, "t1", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := admin.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d tasks, want 1", len(all))
	}
	if all[0].OwnerEmail != "alice@example.com" {
		t.Fatalf("got owner email %q, want alice's", all[0].OwnerEmail)
	}
}

func TestGetUserDetail(t *testing.T) {
	admin, tasks, store := newAdminFixture(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice@example.com")
	if _, err := tasks.Create(ctx, alice.ID, "older", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := tasks.Create(ctx, alice.ID, "newer", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := admin.GetUserDetail(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetUserDetail: %v", err)
	}
	if detail.User.ID != alice.ID {
		t.Fatalf("got user %q, want %q", detail.User.ID, alice.ID)
	}
	if len(detail.Tasks) != 2 || detail.Tasks[0].Title != "newer" {
		t.Fatalf("expected tasks newest-first, got %+v", detail.Tasks)
	}

	_, err = admin.GetUserDetail(ctx, "missing")
	if de := apperrors.ToDomainError(err); de == nil || de.HTTPStatus != 404 {
		t.Fatalf("got %v, want 404", err)
	}
}

func TestAdminUpdateTaskIgnoresOwnership(t *testing.T) {
	admin, tasks, store := newAdminFixture(t)
	ctx := context.Background()

	bob := seedUser(t, store, "bob@example.com")
	task, err := tasks.Create(ctx, bob.ID, "t", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := domain.TaskStatusInProgress
	updated, err := admin.UpdateTask(ctx, task.ID, domain.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Status != domain.TaskStatusInProgress {
		t.Fatalf("got status %q, want in-progress", updated.Status)
	}
	if updated.OwnerID != bob.ID {
		t.Fatalf("owner must stay %q, got %q", bob.ID, updated.OwnerID)
	}

	_, err = admin.UpdateTask(ctx, "missing", domain.TaskPatch{Status: &status})
	if de := apperrors.ToDomainError(err); de == nil || de.HTTPStatus != 404 {
		t.Fatalf("got %v, want 404", err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	admin, tasks, store := newAdminFixture(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice@example.com")
	bob := seedUser(t, store, "bob@example.com")
	for _, title := range []string{"a", "b", "c"} {
		if _, err := tasks.Create(ctx, alice.ID, title, ""); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := tasks.Create(ctx, bob.ID, "bob's", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := admin.DeleteUser(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	_, detailErr := admin.GetUserDetail(ctx, alice.ID)
	if de := apperrors.ToDomainError(detailErr); de == nil || de.HTTPStatus != 404 {
		t.Fatal("deleted user must be unresolvable")
	}
	remaining, err := tasks.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("deleted user still owns %d tasks", len(remaining))
	}
	bobTasks, err := tasks.List(ctx, bob.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bobTasks) != 1 {
		t.Fatalf("unrelated user's tasks must survive, got %d", len(bobTasks))
	}

	if de := apperrors.ToDomainError(admin.DeleteUser(ctx, alice.ID)); de == nil || de.HTTPStatus != 404 {
		t.Fatalf("second delete: got %v, want 404", de)
	}
}

func TestStatsCountsAddUp(t *testing.T) {
	admin, tasks, store := newAdminFixture(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice@example.com")
	seedUser(t, store, "bob@example.com")

	statuses := []domain.TaskStatus{
		domain.TaskStatusPending,
		domain.TaskStatusPending,
		domain.TaskStatusInProgress,
		domain.TaskStatusCompleted,
	}
	for i, status := range statuses {
		task, err := tasks.Create(ctx, alice.ID, "t", "")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if status != domain.TaskStatusPending {
			s := status
			if _, err := admin.UpdateTask(ctx, task.ID, domain.TaskPatch{Status: &s}); err != nil {
				t.Fatalf("UpdateTask %d: %v", i, err)
			}
		}
	}

	stats, err := admin.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalUsers != 2 {
		t.Fatalf("got %d users, want 2", stats.TotalUsers)
	}
	if stats.TotalTasks != 4 {
		t.Fatalf("got %d tasks, want 4", stats.TotalTasks)
	}
	if stats.Pending != 2 || stats.InProgress != 1 || stats.Completed != 1 {
		t.Fatalf("got breakdown %d/%d/%d, want 2/1/1", stats.Pending, stats.InProgress, stats.Completed)
	}
	if stats.Pending+stats.InProgress+stats.Completed != stats.TotalTasks {
		t.Fatal("status breakdown must sum to total tasks")
	}
}
