package seeds

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/prueba-fullstack/usuarios-backend/internal/db"
	"github.com/prueba-fullstack/usuarios-backend/internal/users"
	"github.com/prueba-fullstack/usuarios-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the login for every seeded account. This is demo data;
// there is no registration flow that would give users their own passwords.
const DefaultPassword = "password"

// SeedUser is one entry of the usuarios.json seed file.
type SeedUser struct {
	ID           int     `json:"id"`
	Nombre       string  `json:"nombre"`
	Rol          string  `json:"rol"`
	RentaMensual float64 `json:"renta_mensual"`
}

// User mirrors the app.usuarios row for inserts, hash included.
type User struct {
	ID           int     `gorm:"primaryKey"`
	Username     string  `gorm:"unique;not null"`
	Nombre       string  `gorm:"column:nombre;not null"`
	Rol          string  `gorm:"column:rol;not null"`
	RentaMensual float64 `gorm:"column:renta_mensual"`
	PasswordHash string  `gorm:"column:password_hash;not null"`
}

func (User) TableName() string { return "app.usuarios" }

// BuildUser validates a seed entry and derives the stored row (minus the
// hash): username is slug(nombre) + "_" + id, e.g. "Jhon Doe"/1 -> "jhon_doe_1".
func BuildUser(su SeedUser) (User, error) {
	if su.ID <= 0 {
		return User{}, fmt.Errorf("seed entry %q: invalid id %d", su.Nombre, su.ID)
	}
	if su.Nombre == "" {
		return User{}, fmt.Errorf("seed entry id %d: empty nombre", su.ID)
	}
	if !users.ValidRole(su.Rol) {
		return User{}, fmt.Errorf("seed entry id %d: unknown rol %q", su.ID, su.Rol)
	}

	return User{
		ID:           su.ID,
		Username:     fmt.Sprintf("%s_%d", utils.Slugify(su.Nombre), su.ID),
		Nombre:       su.Nombre,
		Rol:          su.Rol,
		RentaMensual: su.RentaMensual,
	}, nil
}

// Load parses and validates the whole seed file, checking id and username
// uniqueness across entries.
func Load(path string) ([]User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []SeedUser
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seenIDs := make(map[int]struct{}, len(entries))
	out := make([]User, 0, len(entries))
	for _, e := range entries {
		u, err := BuildUser(e)
		if err != nil {
			return nil, err
		}
		if _, dup := seenIDs[u.ID]; dup {
			return nil, fmt.Errorf("seed entry id %d: duplicate id", u.ID)
		}
		seenIDs[u.ID] = struct{}{}
		out = append(out, u)
	}
	return out, nil
}

// Run populates app.usuarios from the seed file. With reset the table is
// wiped first; otherwise seeding only happens when the table is empty, so
// normal restarts are no-ops.
func Run(path string, reset bool) error {
	if reset {
		if err := db.DB.Exec(`DELETE FROM app.usuarios`).Error; err != nil {
			return fmt.Errorf("reset usuarios: %w", err)
		}
		log.Println("RESET_DB=1: wiped usuarios")
	}

	var count int64
	if err := db.DB.Model(&User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows, err := Load(path)
	if err != nil {
		return err
	}

	for i := range rows {
		// bcrypt.GenerateFromPassword salts every hash, so identical
		// passwords still store distinct hashes.
		hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		rows[i].PasswordHash = string(hashed)

		if err := db.DB.Create(&rows[i]).Error; err != nil {
			return fmt.Errorf("insert usuario %d: %w", rows[i].ID, err)
		}
	}

	log.Printf("Seeded %d usuarios", len(rows))
	return nil
}
