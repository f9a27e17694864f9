package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestYandex(authURL, tokenURL, infoURL string) *YandexOAuth {
	return &YandexOAuth{
		conf: &oauth2.Config{
			ClientID:     "cid",
			ClientSecret: "csecret",
			RedirectURL:  "http://localhost/auth/yandex/callback",
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		userInfoURL: infoURL,
		client:      http.DefaultClient,
	}
}

func TestAuthCodeURL(t *testing.T) {
	y := newTestYandex("https://oauth.yandex.ru/authorize", "", "")

	raw := y.AuthCodeURL()

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "cid", q.Get("client_id"))
	assert.Equal(t, "http://localhost/auth/yandex/callback", q.Get("redirect_uri"))
}

func TestExchange_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.Equal(t, "abc", r.FormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"provider-token","token_type":"bearer"}`))
	}))
	defer srv.Close()

	y := newTestYandex("", srv.URL, "")

	token, err := y.Exchange(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "provider-token", token)
}

func TestExchange_BadCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	y := newTestYandex("", srv.URL, "")

	_, err := y.Exchange(context.Background(), "bad")
	require.Error(t, err)
}

func TestUserInfo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth provider-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"default_email":"a@b.com","id":"42","login":"ab"}`))
	}))
	defer srv.Close()

	y := newTestYandex("", "", srv.URL)

	user, err := y.UserInfo(context.Background(), "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "42", user.ID)
}

func TestUserInfo_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	y := newTestYandex("", "", srv.URL)

	_, err := y.UserInfo(context.Background(), "provider-token")
	require.Error(t, err)
}
