package ports

import "context"

// YandexUser is the slice of the Yandex profile this service cares about.
type YandexUser struct {
	ID    string
	Email string
}

type OAuthProvider interface {
	// AuthCodeURL builds the provider authorization URL the client is
	// redirected to.
	AuthCodeURL() string

	// Exchange trades an authorization code for a provider access token.
	Exchange(ctx context.Context, code string) (string, error)

	// UserInfo fetches the profile behind a provider access token.
	UserInfo(ctx context.Context, accessToken string) (*YandexUser, error)
}
