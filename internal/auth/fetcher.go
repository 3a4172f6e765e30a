package auth

import (
	"errors"

	"github.com/prueba-fullstack/usuarios-backend/internal/db"
	"gorm.io/gorm"
)

// UserFetcher abstracts the store lookups the handlers need, so they can be
// unit-tested with a fake.
type UserFetcher interface {
	FindUserByUsername(username string) (*User, error)
	FindUserByID(id int) (*User, error)
}

// UserInfo is the gorm-backed UserFetcher used in production.
type UserInfo struct{}

func (ui UserInfo) FindUserByUsername(username string) (*User, error) {
	var user User

	err := db.DB.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ui UserInfo) FindUserByID(id int) (*User, error) {
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
