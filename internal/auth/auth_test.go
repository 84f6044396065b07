package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pricepilot/internal/auth"
	"pricepilot/internal/models"
	"pricepilot/internal/repositories/memory"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 30*time.Minute)

	token, err := tm.CreateToken("ana@example.com")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	email, err := tm.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if email != "ana@example.com" {
		t.Errorf("subject = %q, want ana@example.com", email)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 30*time.Minute)
	other := auth.NewTokenManager("another-secret", 30*time.Minute)

	token, err := other.CreateToken("ana@example.com")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := tm.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("wrong-secret token: got %v, want ErrInvalidToken", err)
	}
	if _, err := tm.VerifyToken("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("garbage token: got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Nanosecond)

	token, err := tm.CreateToken("ana@example.com")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := tm.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expired token: got %v, want ErrInvalidToken", err)
	}
}

func TestRegisterAndLoginFlow(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(memory.NewUserRepository())

	user, err := svc.Register(ctx, "ana@example.com", "Ana Perez", "hunter22", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RoleBuyer {
		t.Errorf("default role = %q, want %q", user.Role, models.RoleBuyer)
	}
	if user.HashedPassword == "hunter22" {
		t.Error("password stored in plaintext")
	}

	// unverified accounts cannot log in
	if _, err := svc.Login(ctx, "ana@example.com", "hunter22"); !errors.Is(err, auth.ErrEmailNotVerified) {
		t.Fatalf("login before verification: got %v, want ErrEmailNotVerified", err)
	}

	if err := svc.VerifyEmail(ctx, "ana@example.com"); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}

	got, err := svc.Login(ctx, "ana@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.Email != "ana@example.com" || !got.IsVerified {
		t.Errorf("logged-in user = %+v", got)
	}

	if _, err := svc.Login(ctx, "ana@example.com", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("bad password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "hunter22"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(memory.NewUserRepository())

	if _, err := svc.Register(ctx, "ana@example.com", "Ana Perez", "hunter22", models.RoleSupplier); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "ana@example.com", "Ana Clone", "other", ""); !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("duplicate email: got %v, want ErrEmailTaken", err)
	}
}

func TestVerifyEmailUnknownUser(t *testing.T) {
	svc := auth.NewService(memory.NewUserRepository())
	if err := svc.VerifyEmail(context.Background(), "ghost@example.com"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
