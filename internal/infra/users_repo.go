package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dzigojty/Audio-file-downloader/internal/models"
	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) ports.UserRepository {
	return &PostgresUserRepo{pool: pool}
}

func (r *PostgresUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, is_active, is_superuser, yandex_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	row := r.pool.QueryRow(ctx, query, user.Email, user.IsActive, user.IsSuperuser, user.YandexID)
	if err := row.Scan(&user.ID); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, is_active, is_superuser, yandex_id
		FROM users
		WHERE email = $1
	`

	var u models.User

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.IsActive,
		&u.IsSuperuser,
		&u.YandexID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, is_active, is_superuser, yandex_id
		FROM users
		WHERE id = $1
	`

	var u models.User

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.IsActive,
		&u.IsSuperuser,
		&u.YandexID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &u, nil
}

func (r *PostgresUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	// audios rows go with the user via ON DELETE CASCADE
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
