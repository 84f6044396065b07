package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pricepilot/internal/models"
	"pricepilot/internal/repositories"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
        INSERT INTO users (
            email, full_name, hashed_password, role, is_verified, join_date
        ) VALUES (
            $1, $2, $3, $4, $5, $6
        ) RETURNING id
    `
	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.FullName,
		user.HashedPassword,
		user.Role,
		user.IsVerified,
		user.JoinDate,
	).Scan(&user.ID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT id, email, full_name, hashed_password, role, is_verified, join_date
        FROM users
        WHERE email = $1
    `
	user := &models.User{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.HashedPassword,
		&user.Role,
		&user.IsVerified,
		&user.JoinDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) SetVerified(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET is_verified = TRUE WHERE id = $1`, id)
	return err
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
