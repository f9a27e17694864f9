package ports

import (
	"context"

	"github.com/Dzigojty/Audio-file-downloader/internal/models"
)

type AudioRepository interface {
	Insert(ctx context.Context, audio *models.Audio) (*models.Audio, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Audio, error)
}
