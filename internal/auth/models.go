package auth

// User is the auth-side view of a directory record; the only place the
// password hash is ever selected. The hash never serializes to JSON.
type User struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"unique;not null" json:"username"`
	Nombre       string  `gorm:"column:nombre;not null" json:"display_name"`
	Rol          string  `gorm:"column:rol;not null" json:"role"`
	RentaMensual float64 `gorm:"column:renta_mensual" json:"renta_mensual"`
	Password     string  `gorm:"-" json:"password,omitempty"`
	PasswordHash string  `gorm:"column:password_hash;not null" json:"-"`
}

func (User) TableName() string { return "app.usuarios" }
