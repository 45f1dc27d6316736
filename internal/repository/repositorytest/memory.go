// Package repositorytest provides in-memory repository implementations for
// tests. They mirror the Postgres implementations' behavior: pgx.ErrNoRows
// for missing rows, a unique-violation PgError for duplicate emails, and
// the same list orderings.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lucifer9973/task-manager-api/internal/domain"
	"github.com/lucifer9973/task-manager-api/internal/repository"
)

// Store holds linked in-memory user and task repositories.
type Store struct {
	mu    sync.Mutex
	users map[string]domain.User
	tasks map[string]domain.Task
	seq   int
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]domain.User),
		tasks: make(map[string]domain.Task),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Tasks returns the task repository view of the store.
func (s *Store) Tasks() repository.TaskRepository { return &taskRepo{s} }

// SetRole rewrites a user's role. Role changes have no API surface, so
// tests that need an admin promote one directly, the way an operator would
// in the database.
func (s *Store) SetRole(userID string, role domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return false
	}
	user.Role = role
	s.users[userID] = user
	return true
}

// now returns strictly increasing timestamps so created/updated ordering
// is deterministic even on a coarse clock.
func (s *Store) now() time.Time {
	s.seq++
	return time.Now().Add(time.Duration(s.seq) * time.Microsecond)
}

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = r.store.now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *userRepo) List(_ context.Context) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *userRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = r.store.now()
	r.store.users[id] = user
	return nil
}

func (r *userRepo) Count(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.users)), nil
}

func (r *userRepo) DeleteCascade(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return pgx.ErrNoRows
	}
	for taskID, task := range r.store.tasks {
		if task.OwnerID == id {
			delete(r.store.tasks, taskID)
		}
	}
	delete(r.store.users, id)
	return nil
}

type taskRepo struct {
	store *Store
}

func (r *taskRepo) Create(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	task.ID = uuid.NewString()
	task.CreatedAt = r.store.now()
	task.UpdatedAt = task.CreatedAt
	r.store.tasks[task.ID] = *task
	return nil
}

func (r *taskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	task, ok := r.store.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &task, nil
}

func (r *taskRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	task, ok := r.store.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	return &task, nil
}

func (r *taskRepo) Update(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tasks[task.ID]; !ok {
		return pgx.ErrNoRows
	}
	task.UpdatedAt = r.store.now()
	r.store.tasks[task.ID] = *task
	return nil
}

func (r *taskRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tasks[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.store.tasks, id)
	return nil
}

func (r *taskRepo) DeleteByIDAndOwner(_ context.Context, id, ownerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	task, ok := r.store.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return pgx.ErrNoRows
	}
	delete(r.store.tasks, id)
	return nil
}

func (r *taskRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Task, error) {
	return r.listOwned(ownerID, false), nil
}

func (r *taskRepo) ListByOwnerDesc(_ context.Context, ownerID string) ([]domain.Task, error) {
	return r.listOwned(ownerID, true), nil
}

func (r *taskRepo) listOwned(ownerID string, desc bool) []domain.Task {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []domain.Task
	for _, task := range r.store.tasks {
		if task.OwnerID == ownerID {
			result = append(result, task)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if desc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (r *taskRepo) ListAll(_ context.Context) ([]domain.TaskWithOwner, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []domain.TaskWithOwner
	for _, task := range r.store.tasks {
		joined := domain.TaskWithOwner{Task: task}
		if owner, ok := r.store.users[task.OwnerID]; ok {
			joined.OwnerName = owner.Name
			joined.OwnerEmail = owner.Email
		}
		result = append(result, joined)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *taskRepo) Count(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.tasks)), nil
}

func (r *taskRepo) CountByStatus(_ context.Context, status domain.TaskStatus) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, task := range r.store.tasks {
		if task.Status == status {
			count++
		}
	}
	return count, nil
}
