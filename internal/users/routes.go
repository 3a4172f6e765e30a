package users

import (
	"github.com/go-chi/chi/v5"
	"github.com/prueba-fullstack/usuarios-backend/internal/middleware"
)

func SetupRoutes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware)
	r.Get("/", ListHandler(DirectoryStore{}))
	return r
}
