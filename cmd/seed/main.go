package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prueba-fullstack/usuarios-backend/internal/seeds"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// CLI flags
var (
	jsonPath = flag.String("json", "data/usuarios.json", "Path to the usuarios seed JSON")
	dsn      = flag.String("dsn", "", "Postgres DSN (default: env DATABASE_URL)")
	dryRun   = flag.Bool("dry-run", false, "Parse + validate only; no DB writes")
	confirm  = flag.Bool("confirm", false, "Required to perform destructive replace")
)

// resolveDSN picks the flag value if given, falling back to DATABASE_URL. Must
// run after godotenv.Load so a DSN that only lives in .env.local is seen.
func resolveDSN(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

const schemaDDL = `
CREATE SCHEMA IF NOT EXISTS app;
CREATE TABLE IF NOT EXISTS app.usuarios (
	id            bigint PRIMARY KEY,
	username      text UNIQUE NOT NULL,
	nombre        text NOT NULL,
	rol           text NOT NULL,
	renta_mensual double precision,
	password_hash text NOT NULL
);
`

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	conn := resolveDSN(*dsn)
	if conn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}

	rows, err := seeds.Load(*jsonPath)
	if err != nil {
		fatalf("load seed file: %v", err)
	}
	fmt.Printf("Parsed %d usuarios from %s\n", len(rows), *jsonPath)

	if *dryRun {
		for _, u := range rows {
			fmt.Printf("  %3d  %-25s %-10s %s\n", u.ID, u.Username, u.Rol, u.Nombre)
		}
		fmt.Println("Dry run: no writes performed")
		return
	}

	if !*confirm {
		fatalf("refusing destructive replace without --confirm")
	}

	database, err := sql.Open("pgx", conn)
	if err != nil {
		fatalf("open database: %v", err)
	}
	defer database.Close()

	if _, err := database.Exec(schemaDDL); err != nil {
		fatalf("ensure schema: %v", err)
	}

	tx, err := database.Begin()
	if err != nil {
		fatalf("begin tx: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM app.usuarios`); err != nil {
		fatalf("wipe usuarios: %v", err)
	}

	for _, u := range rows {
		hashed, err := bcrypt.GenerateFromPassword([]byte(seeds.DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			fatalf("hash password: %v", err)
		}
		_, err = tx.Exec(
			`INSERT INTO app.usuarios (id, username, nombre, rol, renta_mensual, password_hash)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			u.ID, u.Username, u.Nombre, u.Rol, u.RentaMensual, string(hashed),
		)
		if err != nil {
			fatalf("insert usuario %d: %v", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		fatalf("commit: %v", err)
	}
	fmt.Printf("Replaced usuarios with %d seeded rows\n", len(rows))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
