package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pricepilot/internal/models"
	"pricepilot/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUserNotFound       = errors.New("user not found")
)

// Service owns the register/login/verify rules on top of the user store.
type Service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, email, fullName, password, role string) (*models.User, error) {
	if email == "" || fullName == "" || password == "" {
		return nil, errors.New("missing required fields")
	}
	if role == "" {
		role = models.RoleBuyer
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:          email,
		FullName:       fullName,
		HashedPassword: string(hashed),
		Role:           role,
		JoinDate:       time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and the email-verified flag.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}
	return user, nil
}

// VerifyEmail marks the user behind the email as verified.
func (s *Service) VerifyEmail(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return ErrUserNotFound
	}
	return s.repo.SetVerified(ctx, user.ID)
}

// GetByEmail looks up the user a verified token belongs to.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
