package ports

import "context"

type AuthService interface {
	AuthURL() string
	HandleCallback(ctx context.Context, code string) (string, error)
}
