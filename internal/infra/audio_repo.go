package infra

import (
	"context"
	"fmt"

	"github.com/Dzigojty/Audio-file-downloader/internal/models"
	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresAudioRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresAudioRepo(pool *pgxpool.Pool) ports.AudioRepository {
	return &PostgresAudioRepo{pool: pool}
}

func (r *PostgresAudioRepo) Insert(ctx context.Context, audio *models.Audio) (*models.Audio, error) {
	query := `
		INSERT INTO audios (user_id, name, file_path)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	row := r.pool.QueryRow(ctx, query, audio.UserID, audio.Name, audio.FilePath)
	if err := row.Scan(&audio.ID, &audio.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert audio: %w", err)
	}
	return audio, nil
}

func (r *PostgresAudioRepo) ListByUser(ctx context.Context, userID int64) ([]models.Audio, error) {
	query := `
		SELECT id, user_id, name, file_path, created_at
		FROM audios
		WHERE user_id = $1
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list audios: %w", err)
	}
	defer rows.Close()

	audios := []models.Audio{}
	for rows.Next() {
		var a models.Audio
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.FilePath, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audio: %w", err)
		}
		audios = append(audios, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audios: %w", err)
	}

	return audios, nil
}
