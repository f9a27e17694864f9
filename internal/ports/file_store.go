package ports

import "io"

type FileStore interface {
	// Save writes content under a freshly generated name carrying ext
	// (".wav", ".mp3", ...) and returns the stored path.
	Save(ext string, content io.Reader) (string, error)
}
