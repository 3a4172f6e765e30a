package auth

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prueba-fullstack/usuarios-backend/internal/middleware"
	"golang.org/x/time/rate"
)

func SetupRoutes(secure bool) *chi.Mux {
	fetcher := UserInfo{}

	// Sustained 1 attempt/s per IP with a small burst; only login pays the
	// bcrypt cost, so only login gets throttled.
	limiter := middleware.NewLoginLimiter(rate.Every(time.Second), 10)

	r := chi.NewRouter()
	r.With(limiter.Middleware).Post("/login", LoginHandler(fetcher, secure))
	r.Post("/logout", LogoutHandler())
	r.With(middleware.SessionMiddleware).Get("/me", MeHandler(fetcher))
	return r
}
