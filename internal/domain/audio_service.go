package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Dzigojty/Audio-file-downloader/internal/models"
	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
)

var ErrNoFilename = errors.New("no filename provided")

type audioService struct {
	audios ports.AudioRepository
	store  ports.FileStore
}

func NewAudioService(audios ports.AudioRepository, store ports.FileStore) ports.AudioService {
	return &audioService{
		audios: audios,
		store:  store,
	}
}

// Upload stores the file content under a generated name and records it for
// the user. The extension is taken from the client's filename; files named
// without one are assumed to be mp3.
func (s *audioService) Upload(ctx context.Context, userID int64, name, filename string, file io.Reader) (*models.Audio, error) {
	if filename == "" {
		return nil, ErrNoFilename
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".mp3"
	}

	path, err := s.store.Save(ext, file)
	if err != nil {
		return nil, fmt.Errorf("save file: %w", err)
	}

	audio, err := s.audios.Insert(ctx, &models.Audio{
		UserID:   userID,
		Name:     name,
		FilePath: path,
	})
	if err != nil {
		return nil, fmt.Errorf("insert audio: %w", err)
	}

	return audio, nil
}

func (s *audioService) List(ctx context.Context, userID int64) ([]models.Audio, error) {
	return s.audios.ListByUser(ctx, userID)
}
