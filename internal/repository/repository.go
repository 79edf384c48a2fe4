package repository

import (
	"context"

	"github.com/Ujjawall12/HackOnHills7.0/internal/domain"
)

// UserRepository persists users and their operating system lists.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	// AppendOperatingSystem adds one entry to the user's list and returns the
	// full list after the append.
	AppendOperatingSystem(ctx context.Context, userID, name, customString string) ([]domain.OperatingSystem, error)
	ListOperatingSystems(ctx context.Context, userID string) ([]domain.OperatingSystem, error)
}
