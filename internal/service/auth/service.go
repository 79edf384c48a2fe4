package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/Ujjawall12/HackOnHills7.0/internal/domain"
	"github.com/Ujjawall12/HackOnHills7.0/internal/repository"
	"github.com/Ujjawall12/HackOnHills7.0/pkg/crypto"
	"github.com/Ujjawall12/HackOnHills7.0/pkg/token"
)

// ErrEmailTaken signals a signup for an email that already has an account.
var ErrEmailTaken = errors.New("user already exists")

// ErrInvalidCredentials covers both unknown email and wrong password so the
// response does not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthenticated signals a missing, invalid or expired bearer token, or a
// token whose user no longer exists.
var ErrUnauthenticated = errors.New("authentication required")

// Service handles authentication workflows.
type Service struct {
	users  repository.UserRepository
	tokens token.Service
	logger *slog.Logger
}

// New constructs a Service.
func New(users repository.UserRepository, tokens token.Service, logger *slog.Logger) Service {
	return Service{users: users, tokens: tokens, logger: logger}
}

// Signup registers a new user and issues a bearer token.
func (s Service) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}
	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, signed, nil
}

// Login verifies credentials and issues a bearer token.
func (s Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !crypto.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, signed, nil
}

// Authorize validates a bearer token and resolves the associated user. Every
// failure collapses to ErrUnauthenticated; the classified reason is only
// logged server side.
func (s Service) Authorize(ctx context.Context, raw string) (*domain.User, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrUnauthenticated
	}
	userID, err := s.tokens.Validate(trimmed)
	if err != nil {
		s.logger.Warn("token rejected", "reason", err)
		return nil, ErrUnauthenticated
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("token subject no longer exists", "user_id", userID)
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// AddOperatingSystem appends an entry to the user's list and returns the
// updated list.
func (s Service) AddOperatingSystem(ctx context.Context, userID, name, customString string) ([]domain.OperatingSystem, error) {
	entries, err := s.users.AppendOperatingSystem(ctx, userID, name, customString)
	if err != nil {
		return nil, err
	}
	s.logger.Info("operating system recorded", "user_id", userID, "os", name)
	return entries, nil
}

// ListOperatingSystems returns the user's entries in insertion order.
func (s Service) ListOperatingSystems(ctx context.Context, userID string) ([]domain.OperatingSystem, error) {
	return s.users.ListOperatingSystems(ctx, userID)
}
