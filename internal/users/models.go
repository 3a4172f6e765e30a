package users

// Roles understood by the visibility filter. Anything else is rejected.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleUsuario    = "usuario"
)

// User is the public view of a directory record. The password hash lives only
// on the auth package's model; this one never selects it.
type User struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	Username     string  `json:"username"`
	Nombre       string  `gorm:"column:nombre" json:"display_name"`
	Rol          string  `gorm:"column:rol" json:"role"`
	RentaMensual float64 `gorm:"column:renta_mensual" json:"renta_mensual"`
}

func (User) TableName() string { return "app.usuarios" }

// ValidRole reports whether rol is one of the three recognized roles.
func ValidRole(rol string) bool {
	switch rol {
	case RoleAdmin, RoleSupervisor, RoleUsuario:
		return true
	}
	return false
}
