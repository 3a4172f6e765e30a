package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prueba-fullstack/usuarios-backend/internal/auth"
	"github.com/prueba-fullstack/usuarios-backend/internal/config"
	"github.com/prueba-fullstack/usuarios-backend/internal/db"
	"github.com/prueba-fullstack/usuarios-backend/internal/middleware"
	"github.com/prueba-fullstack/usuarios-backend/internal/users"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db.Connect(cfg.DatabaseURL)
	auth.Init(cfg)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Mount("/auth", auth.SetupRoutes(cfg.Production()))
	r.Mount("/usuarios", users.SetupRoutes())

	// Frontend (login + dashboard) at the web root; API routes above win.
	r.Handle("/*", http.FileServer(http.Dir(cfg.FrontendDir)))

	log.Printf("Server listening on port :%s...", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
