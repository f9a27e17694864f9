package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	users ports.UserRepository
	log   *zap.Logger
}

func NewUserHandler(users ports.UserRepository, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users: users,
		log:   log,
	}
}

// GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}

// DELETE /users/{user_id}  (superuser only)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "user_id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	deleted, err := h.users.Delete(r.Context(), id)
	if err != nil {
		h.log.Error("delete user failed", zap.Int64("userID", id), zap.Error(err))
		http.Error(w, "failed to delete user", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	h.log.Info("user deleted", zap.Int64("userID", id))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "success",
	})
}
