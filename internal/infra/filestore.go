package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
	"github.com/google/uuid"
)

// DiskStore writes uploads to a local directory. Names are random UUIDs, so
// two uploads of the same original file never collide.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) ports.FileStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Save(ext string, content io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, uuid.NewString()+ext)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
