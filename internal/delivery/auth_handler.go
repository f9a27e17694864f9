package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dzigojty/Audio-file-downloader/internal/domain"
	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth ports.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth ports.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// GET /auth/yandex
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.auth.AuthURL(), http.StatusTemporaryRedirect)
}

// GET /auth/yandex/callback?code=...
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	token, err := h.auth.HandleCallback(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCode):
			http.Error(w, "invalid code", http.StatusBadRequest)
		case errors.Is(err, domain.ErrUserInfo):
			http.Error(w, "could not fetch user info", http.StatusBadRequest)
		default:
			h.log.Error("oauth callback failed", zap.Error(err))
			http.Error(w, "authentication failed", http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("login success")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
