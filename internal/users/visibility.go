package users

import "errors"

// ErrUnknownRole is returned when the caller's role is not one of the three
// recognized values. The HTTP layer maps it to 403.
var ErrUnknownRole = errors.New("unknown role")

// VisibleUsers applies the role visibility rules and returns the subset of the
// directory the caller may see, in id order:
//
//   - admin: every user
//   - supervisor: supervisors and usuarios (no admins)
//   - usuario: only the caller's own record
func VisibleUsers(dir Directory, role string, callerID int) ([]User, error) {
	switch role {
	case RoleAdmin:
		return dir.ListAll()

	case RoleSupervisor:
		return dir.ListByRoles(RoleSupervisor, RoleUsuario)

	case RoleUsuario:
		user, err := dir.FindByID(callerID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return []User{}, nil
		}
		return []User{*user}, nil

	default:
		return nil, ErrUnknownRole
	}
}
