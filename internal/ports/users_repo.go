package ports

import (
	"context"

	"github.com/Dzigojty/Audio-file-downloader/internal/models"
)

type UserRepository interface {
	// Create inserts a new user and fills in its generated ID.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns (nil, nil) when no user has that ID.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// Delete removes a user. Returns false when the user did not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}
