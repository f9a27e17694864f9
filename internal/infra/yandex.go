package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
	"golang.org/x/oauth2"
)

const (
	yandexAuthURL     = "https://oauth.yandex.ru/authorize"
	yandexTokenURL    = "https://oauth.yandex.ru/token"
	yandexUserInfoURL = "https://login.yandex.ru/info"
)

// YandexOAuth speaks the Yandex OAuth dialect: standard authorization-code
// exchange plus a profile endpoint that wants "Authorization: OAuth <token>".
type YandexOAuth struct {
	conf        *oauth2.Config
	userInfoURL string
	client      *http.Client
}

func NewYandexOAuth(clientID, clientSecret, redirectURI string) ports.OAuthProvider {
	return &YandexOAuth{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  yandexAuthURL,
				TokenURL: yandexTokenURL,
			},
		},
		userInfoURL: yandexUserInfoURL,
		client:      http.DefaultClient,
	}
}

func (y *YandexOAuth) AuthCodeURL() string {
	return y.conf.AuthCodeURL("")
}

func (y *YandexOAuth) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, y.client)

	token, err := y.conf.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("yandex token exchange: %w", err)
	}

	return token.AccessToken, nil
}

type yandexInfoResponse struct {
	DefaultEmail string `json:"default_email"`
	ID           string `json:"id"`
}

func (y *YandexOAuth) UserInfo(ctx context.Context, accessToken string) (*ports.YandexUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "OAuth "+accessToken)

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yandex info request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yandex info http %d", resp.StatusCode)
	}

	var parsed yandexInfoResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("yandex info decode: %w", err)
	}

	return &ports.YandexUser{
		ID:    parsed.ID,
		Email: parsed.DefaultEmail,
	}, nil
}
