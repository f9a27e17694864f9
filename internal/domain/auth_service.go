package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dzigojty/Audio-file-downloader/internal/auth"
	"github.com/Dzigojty/Audio-file-downloader/internal/models"
	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
)

var (
	ErrInvalidCode = errors.New("invalid code")
	ErrUserInfo    = errors.New("could not fetch user info")
)

type authService struct {
	provider ports.OAuthProvider
	users    ports.UserRepository
	tokens   *auth.Manager
}

func NewAuthService(provider ports.OAuthProvider, users ports.UserRepository, tokens *auth.Manager) ports.AuthService {
	return &authService{
		provider: provider,
		users:    users,
		tokens:   tokens,
	}
}

func (s *authService) AuthURL() string {
	return s.provider.AuthCodeURL()
}

// HandleCallback finishes the OAuth dance: code → provider token → profile →
// local user → signed bearer token. The user is keyed by email; a profile
// seen before reuses its row as is, the stored yandex_id is not refreshed.
func (s *authService) HandleCallback(ctx context.Context, code string) (string, error) {
	accessToken, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}

	profile, err := s.provider.UserInfo(ctx, accessToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUserInfo, err)
	}

	user, err := s.users.GetByEmail(ctx, profile.Email)
	if err != nil {
		return "", fmt.Errorf("get user by email: %w", err)
	}
	if user == nil {
		user, err = s.users.Create(ctx, &models.User{
			Email:    profile.Email,
			IsActive: true,
			YandexID: profile.ID,
		})
		if err != nil {
			return "", fmt.Errorf("create user: %w", err)
		}
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
