package users

import (
	"errors"
	"net/http"

	"github.com/prueba-fullstack/usuarios-backend/internal/httputil"
	"github.com/prueba-fullstack/usuarios-backend/internal/utils"
)

// ListHandler returns the visibility-filtered user list for the session carried
// on the request context. SessionMiddleware must run before it.
func ListHandler(dir Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			httputil.Error(w, "No autenticado", http.StatusUnauthorized)
			return
		}
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok {
			httputil.Error(w, "No autenticado", http.StatusUnauthorized)
			return
		}

		visible, err := VisibleUsers(dir, role, callerID)
		if err != nil {
			if errors.Is(err, ErrUnknownRole) {
				httputil.Error(w, "Rol no reconocido", http.StatusForbidden)
				return
			}
			httputil.Error(w, "Error del servidor", http.StatusInternalServerError)
			return
		}

		if visible == nil {
			visible = []User{}
		}
		httputil.JSON(w, visible, http.StatusOK)
	}
}
