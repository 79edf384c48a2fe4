package auth

import (
	"context"
	"io"
	"log/slog"

	"github.com/Ujjawall12/HackOnHills7.0/internal/domain"
	"github.com/Ujjawall12/HackOnHills7.0/internal/repository"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type userRepoMock struct {
	createFunc   func(ctx context.Context, user *domain.User) error
	getByEmail   func(ctx context.Context, email string) (*domain.User, error)
	getByID      func(ctx context.Context, id string) (*domain.User, error)
	appendOSFunc func(ctx context.Context, userID, name, customString string) ([]domain.OperatingSystem, error)
	listOSFunc   func(ctx context.Context, userID string) ([]domain.OperatingSystem, error)
}

var _ repository.UserRepository = userRepoMock{}

func (m userRepoMock) CreateUser(ctx context.Context, user *domain.User) error {
	if m.createFunc == nil {
		return nil
	}
	return m.createFunc(ctx, user)
}

func (m userRepoMock) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmail == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByEmail(ctx, email)
}

func (m userRepoMock) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByID == nil {
		return nil, repository.ErrNotFound
	}
	return m.getByID(ctx, id)
}

func (m userRepoMock) AppendOperatingSystem(ctx context.Context, userID, name, customString string) ([]domain.OperatingSystem, error) {
	if m.appendOSFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.appendOSFunc(ctx, userID, name, customString)
}

func (m userRepoMock) ListOperatingSystems(ctx context.Context, userID string) ([]domain.OperatingSystem, error) {
	if m.listOSFunc == nil {
		return nil, nil
	}
	return m.listOSFunc(ctx, userID)
}
