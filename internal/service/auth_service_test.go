package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucifer9973/task-manager-api/internal/config"
	"github.com/lucifer9973/task-manager-api/internal/domain"
	"github.com/lucifer9973/task-manager-api/internal/repository/repositorytest"
	apperrors "github.com/lucifer9973/task-manager-api/pkg/util"
)

func newAuthService() (*AuthService, *repositorytest.Store) {
	store := repositorytest.NewStore()
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}
	return NewAuthService(cfg, store.Users()), store
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	user, token, _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("got role %q, want default user role", user.Role)
	}
	if token == "" {
		t.Fatal("expected a token on registration")
	}

	loggedIn, loginToken, _, err := svc.Login(ctx, "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("login resolved user %q, want %q", loggedIn.ID, user.ID)
	}

	claims, err := svc.TokenManager().Parse(loginToken)
	if err != nil {
		t.Fatalf("Parse login token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token decodes to %q, want %q", claims.UserID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, _, _, err := svc.Register(ctx, "Mallory", "alice@example.com", "other")
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	de := apperrors.ToDomainError(err)
	if de.HTTPStatus != 400 || de.Code != "CONFLICT" {
		t.Fatalf("got %d/%s, want 400/CONFLICT", de.HTTPStatus, de.Code)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	cases := [][3]string{
		{"", "a@example.com", "pw"},
		{"A", "", "pw"},
		{"A", "a@example.com", ""},
	}
	for _, tc := range cases {
		_, _, _, err := svc.Register(ctx, tc[0], tc[1], tc[2])
		if de := apperrors.ToDomainError(err); de == nil || de.HTTPStatus != 400 {
			t.Fatalf("Register(%q,%q,%q): got %v, want 400", tc[0], tc[1], tc[2], err)
		}
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Wrong password and unknown email fail identically.
	for _, tc := range [][2]string{
		{"alice@example.com", "wrong"},
		{"nobody@example.com", "pw123"},
	} {
		_, _, _, err := svc.Login(ctx, tc[0], tc[1])
		de := apperrors.ToDomainError(err)
		if de == nil || de.HTTPStatus != 400 || de.Message != "Invalid credentials" {
			t.Fatalf("Login(%q): got %v, want 400 Invalid credentials", tc[0], err)
		}
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "wrong", "next"); err == nil {
		t.Fatal("expected error for wrong current password")
	}
	if err := svc.ChangePassword(ctx, user.ID, "pw123", "next"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "alice@example.com", "next"); err != nil {
		t.Fatalf("Login with new password: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "alice@example.com", "pw123"); err == nil {
		t.Fatal("old password must no longer work")
	}
}
