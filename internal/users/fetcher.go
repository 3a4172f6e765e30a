package users

import (
	"errors"

	"github.com/prueba-fullstack/usuarios-backend/internal/db"
	"gorm.io/gorm"
)

// Directory is the read surface of the user store the visibility filter runs
// against. Split out as an interface so handlers are testable without a database.
type Directory interface {
	ListAll() ([]User, error)
	ListByRoles(roles ...string) ([]User, error)
	FindByID(id int) (*User, error)
}

// DirectoryStore is the gorm-backed Directory used in production.
type DirectoryStore struct{}

func (ds DirectoryStore) ListAll() ([]User, error) {
	var users []User
	if err := db.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ds DirectoryStore) ListByRoles(roles ...string) ([]User, error) {
	var users []User
	if err := db.DB.Where("rol IN ?", roles).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ds DirectoryStore) FindByID(id int) (*User, error) {
	var user User
	err := db.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
