package service_test

import (
	"errors"
	"testing"

	"github.com/quizki/quizki/internal/dto"
	"github.com/quizki/quizki/internal/model"
	"github.com/quizki/quizki/internal/service"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Fatalf("expected default role %q, got %q", model.RoleUser, user.Role)
	}

	token, err := svc.Login("alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	userID, role, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if userID != user.ID || role != model.RoleUser {
		t.Fatalf("expected identity %d/%s, got %d/%s", user.ID, model.RoleUser, userID, role)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	var stored model.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("loading user: %v", err)
	}
	if stored.Password == "s3cret" || stored.Password == "" {
		t.Fatal("expected password stored as a hash")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	seedUser(t, db, "alice", 0)

	_, err := svc.Register(dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "s3cret",
	})
	if !errors.Is(err, service.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	seedUser(t, db, "alice", 0)

	_, err := svc.Register(dto.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	if _, err := svc.Register(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login("alice", "wrong")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Login("nobody", "s3cret")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	if _, _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
