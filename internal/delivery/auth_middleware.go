package delivery

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dzigojty/Audio-file-downloader/internal/auth"
	"github.com/Dzigojty/Audio-file-downloader/internal/models"
	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
)

type ctxKey int

const userKey ctxKey = iota

// UserFromContext returns the user loaded by the Authenticate middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, "could not validate credentials", http.StatusUnauthorized)
}

// Authenticate resolves the bearer token into a user and stores it in the
// request context. Every failure mode collapses into one 401.
func Authenticate(users ports.UserRepository, tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			header := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				unauthorized(w)
				return
			}

			subject, err := tokens.Subject(tokenString)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, err := strconv.ParseInt(subject, 10, 64)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil || user == nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperuser gates admin routes. Must run after Authenticate.
func RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		if !user.IsSuperuser {
			http.Error(w, "permission denied", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
