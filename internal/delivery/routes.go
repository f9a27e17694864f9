package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hAuth *AuthHandler,
	hAudio *AudioHandler,
	hUsers *UserHandler,
	authenticate func(http.Handler) http.Handler,
) {
	// login flow, public
	r.Get("/auth/yandex", hAuth.Login)
	r.Get("/auth/yandex/callback", hAuth.Callback)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/audio/", hAudio.Upload)
		r.Get("/audio/", hAudio.List)
		r.Get("/users/me", hUsers.Me)

		r.Group(func(r chi.Router) {
			r.Use(RequireSuperuser)
			r.Delete("/users/{user_id}", hUsers.Delete)
		})
	})
}
