package ports

import (
	"context"
	"io"

	"github.com/Dzigojty/Audio-file-downloader/internal/models"
)

type AudioService interface {
	Upload(ctx context.Context, userID int64, name, filename string, file io.Reader) (*models.Audio, error)
	List(ctx context.Context, userID int64) ([]models.Audio, error)
}
