package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ujjawall12/HackOnHills7.0/internal/domain"
	"github.com/Ujjawall12/HackOnHills7.0/internal/repository"
)

// Repository implements persistence interfaces on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// New constructs a Repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ repository.UserRepository = (*Repository)(nil)

// CreateUser inserts a user. The unique index on email resolves concurrent
// signups for the same address: the loser observes ErrEmailTaken.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	const query = `INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetUserByEmail fetches a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

// GetUserByID retrieves a user by identifier.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

// AppendOperatingSystem inserts one list entry and returns the resulting list.
// Entries carry a bigserial position, so racing appends for the same user both
// land without overwriting each other.
func (r *Repository) AppendOperatingSystem(ctx context.Context, userID, name, customString string) ([]domain.OperatingSystem, error) {
	const query = `INSERT INTO operating_systems (user_id, name, custom_string, created_at)
		VALUES ($1, $2, $3, NOW())`
	if _, err := r.pool.Exec(ctx, query, userID, name, customString); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return r.ListOperatingSystems(ctx, userID)
}

// ListOperatingSystems returns the user's entries in insertion order.
func (r *Repository) ListOperatingSystems(ctx context.Context, userID string) ([]domain.OperatingSystem, error) {
	const query = `SELECT name, custom_string, created_at FROM operating_systems
		WHERE user_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.OperatingSystem, 0)
	for rows.Next() {
		var entry domain.OperatingSystem
		if err := rows.Scan(&entry.Name, &entry.CustomString, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
