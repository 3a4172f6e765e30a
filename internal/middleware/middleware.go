package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prueba-fullstack/usuarios-backend/internal/httputil"
	"github.com/prueba-fullstack/usuarios-backend/internal/utils"
)

// SessionMiddleware requires the user_id and role session cookies. The pair is
// the whole session: user_id must parse as an integer and role must be
// non-empty, otherwise 401. Valid values are placed on the request context.
//
// The role is trusted as-is for authorization; it is not re-checked against
// the store per request.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDCookie, err := r.Cookie("user_id")
		if err != nil {
			httputil.Error(w, "No autenticado", http.StatusUnauthorized)
			return
		}
		roleCookie, err := r.Cookie("role")
		if err != nil {
			httputil.Error(w, "No autenticado", http.StatusUnauthorized)
			return
		}

		userID, err := strconv.Atoi(userIDCookie.Value)
		if err != nil || roleCookie.Value == "" {
			httputil.Error(w, "No autenticado", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ContextUserIDKey, userID)
		ctx = context.WithValue(ctx, utils.ContextRoleKey, roleCookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

var allowed = map[string]struct{}{
	"http://localhost:8000": {},
	"http://127.0.0.1:8000": {},
	"http://localhost:5173": {},
	"http://localhost:5174": {},
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it's on our allow-list
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
