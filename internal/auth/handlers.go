package auth

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/prueba-fullstack/usuarios-backend/internal/httputil"
	"github.com/prueba-fullstack/usuarios-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler verifies {username, password} against the stored bcrypt hash.
// On success it sets the user_id and role session cookies and returns the
// user; on any credential failure it returns 401 and sets nothing.
func LoginHandler(fetcher UserFetcher, secure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req User

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			httputil.Error(w, "Solicitud invalida", http.StatusBadRequest)
			return
		}

		username := strings.TrimSpace(req.Username)
		password := req.Password
		if username == "" || password == "" {
			httputil.Error(w, "Credenciales invalidas", http.StatusUnauthorized)
			return
		}

		// Search for matching username
		user, err := fetcher.FindUserByUsername(username)
		if err != nil {
			httputil.Error(w, "Error del servidor", http.StatusInternalServerError)
			return
		}
		if user == nil {
			httputil.Error(w, "Credenciales invalidas", http.StatusUnauthorized)
			return
		}

		// Compare hashed password with plaintext password
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
		if err != nil {
			httputil.Error(w, "Credenciales invalidas", http.StatusUnauthorized)
			return
		}

		// Passwords matched, set session cookies
		http.SetCookie(w, sessionCookie("user_id", strconv.Itoa(user.ID), secure))
		http.SetCookie(w, sessionCookie("role", user.Rol, secure))

		user.Password = ""
		httputil.JSON(w, map[string]any{
			"message": "Login OK",
			"user":    user,
		}, http.StatusOK)
	}
}

// LogoutHandler clears both session cookies.
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, expiredCookie("user_id"))
		http.SetCookie(w, expiredCookie("role"))

		httputil.JSON(w, map[string]string{"message": "Logout OK"}, http.StatusOK)
	}
}

// MeHandler returns the signed-in user's own record. Runs behind
// SessionMiddleware, which put the caller's id on the context.
func MeHandler(fetcher UserFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			httputil.Error(w, "No autenticado", http.StatusUnauthorized)
			return
		}

		user, err := fetcher.FindUserByID(userID)
		if err != nil {
			httputil.Error(w, "Error del servidor", http.StatusInternalServerError)
			return
		}
		if user == nil {
			httputil.Error(w, "Usuario no encontrado", http.StatusNotFound)
			return
		}

		httputil.JSON(w, user, http.StatusOK)
	}
}
