package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prueba-fullstack/usuarios-backend/internal/auth"
	"github.com/prueba-fullstack/usuarios-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// fakeFetcher implements auth.UserFetcher without any database dependency.
type fakeFetcher struct {
	users map[string]*auth.User
	err   error
}

func (f fakeFetcher) FindUserByUsername(username string) (*auth.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[username], nil
}

func (f fakeFetcher) FindUserByID(id int) (*auth.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func fetcherWithAdmin(t *testing.T) fakeFetcher {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return fakeFetcher{users: map[string]*auth.User{
		"jhon_doe_1": {
			ID:           1,
			Username:     "jhon_doe_1",
			Nombre:       "Jhon Doe",
			Rol:          "admin",
			PasswordHash: string(hashed),
		},
	}}
}

func postLogin(t *testing.T, fetcher auth.UserFetcher, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	auth.LoginHandler(fetcher, false)(rec, req)
	return rec
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TestLoginHandler_Success verifies that valid credentials return 200 with both
// HTTPOnly session cookies and the user payload without the hash.
func TestLoginHandler_Success(t *testing.T) {
	rec := postLogin(t, fetcherWithAdmin(t), `{"username":"jhon_doe_1","password":"password"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	userID := cookieByName(cookies, "user_id")
	role := cookieByName(cookies, "role")
	if userID == nil || role == nil {
		t.Fatalf("expected user_id and role cookies, got %v", cookies)
	}
	if userID.Value != "1" {
		t.Errorf("user_id cookie = %q, want \"1\"", userID.Value)
	}
	if role.Value != "admin" {
		t.Errorf("role cookie = %q, want \"admin\"", role.Value)
	}
	if !userID.HttpOnly || !role.HttpOnly {
		t.Error("session cookies must be HTTPOnly")
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %s", rec.Body.String())
	}
	if strings.Contains(string(body["user"]), "password") {
		t.Errorf("login response must not carry password material: %s", body["user"])
	}
}

// TestLoginHandler_WrongPassword verifies a bad password returns 401 and sets
// no cookies at all.
func TestLoginHandler_WrongPassword(t *testing.T) {
	rec := postLogin(t, fetcherWithAdmin(t), `{"username":"jhon_doe_1","password":"mala"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("failed login must set no cookies, got %v", cookies)
	}
	if !strings.Contains(rec.Body.String(), "Credenciales invalidas") {
		t.Errorf("expected credential error body, got: %q", rec.Body.String())
	}
}

// TestLoginHandler_UnknownUser verifies an absent username is the same 401 as a
// wrong password.
func TestLoginHandler_UnknownUser(t *testing.T) {
	rec := postLogin(t, fetcherWithAdmin(t), `{"username":"nadie_99","password":"password"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("failed login must set no cookies, got %v", cookies)
	}
}

// TestLoginHandler_BadBody verifies undecodable JSON returns 400.
func TestLoginHandler_BadBody(t *testing.T) {
	rec := postLogin(t, fetcherWithAdmin(t), `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// TestLoginHandler_EmptyCredentials verifies blank fields are rejected as
// invalid credentials, not a server error.
func TestLoginHandler_EmptyCredentials(t *testing.T) {
	rec := postLogin(t, fetcherWithAdmin(t), `{"username":"  ","password":""}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestLoginHandler_StoreError verifies a store failure surfaces as 500, not 401.
func TestLoginHandler_StoreError(t *testing.T) {
	rec := postLogin(t, fakeFetcher{err: errors.New("connection refused")},
		`{"username":"jhon_doe_1","password":"password"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// TestLogoutHandler verifies both cookies are expired.
func TestLogoutHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	auth.LogoutHandler()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	for _, name := range []string{"user_id", "role"} {
		c := cookieByName(cookies, name)
		if c == nil {
			t.Fatalf("logout did not touch %s cookie", name)
		}
		if c.Value != "" || c.MaxAge >= 0 {
			t.Errorf("%s cookie not cleared: value=%q maxAge=%d", name, c.Value, c.MaxAge)
		}
	}
}

// TestMeHandler verifies the current user's record comes back for a valid
// session and 404 when the id disappeared.
func TestMeHandler(t *testing.T) {
	fetcher := fetcherWithAdmin(t)

	withUserID := func(id int) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		ctx := context.WithValue(req.Context(), utils.ContextUserIDKey, id)
		rec := httptest.NewRecorder()
		auth.MeHandler(fetcher)(rec, req.WithContext(ctx))
		return rec
	}

	rec := withUserID(1)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	var me map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("invalid JSON body: %s", rec.Body.String())
	}
	if me["username"] != "jhon_doe_1" {
		t.Errorf("me.username = %v, want jhon_doe_1", me["username"])
	}

	if rec := withUserID(42); rec.Code != http.StatusNotFound {
		t.Errorf("missing user: expected 404, got %d", rec.Code)
	}
}
