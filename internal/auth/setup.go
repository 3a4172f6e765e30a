package auth

import (
	"log"

	"github.com/prueba-fullstack/usuarios-backend/internal/config"
	"github.com/prueba-fullstack/usuarios-backend/internal/db"
	"github.com/prueba-fullstack/usuarios-backend/internal/seeds"
)

// Init ensures the schema and table exist and the directory is seeded. With
// cfg.ResetDB the table is wiped and re-seeded from the seed file.
func Init(cfg config.Config) {
	if err := db.EnsureSchema(db.DB, "app"); err != nil {
		log.Fatal("Failed to ensure schema app: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to auto-migrate tables: ", err)
	}

	if err := seeds.Run(cfg.SeedPath, cfg.ResetDB); err != nil {
		log.Fatal("Failed to seed usuarios: ", err)
	}
}
