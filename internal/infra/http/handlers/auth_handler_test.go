package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/mlecomte/urbanstyle/internal/infra/http/handlers"
	"github.com/mlecomte/urbanstyle/internal/infra/http/middleware"
)

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginWithDefaultPassword(t *testing.T) {
	handler := handlers.NewAuthHandler("", "", 0, false)

	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"admin123"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	assert.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 60*60*24*7, cookie.MaxAge)
}

func TestLoginWrongPassword(t *testing.T) {
	handler := handlers.NewAuthHandler("secret", "", 0, false)

	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"mauvais"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Mot de passe incorrect", decodeBody(t, rec)["error"])
	assert.Nil(t, sessionCookie(rec))
}

func TestLoginMissingPassword(t *testing.T) {
	handler := handlers.NewAuthHandler("", "", 0, false)

	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mot de passe requis", decodeBody(t, rec)["error"])
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)
	// Com hash configurado, a senha em claro é ignorada.
	handler := handlers.NewAuthHandler("autre", string(hash), 0, false)

	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"secret"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"autre"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	handler := handlers.NewAuthHandler("", "", 0, false)

	rec := httptest.NewRecorder()
	handler.HandleLogout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	assert.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestRequireAuthBlocksWithoutCookie(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	middleware.RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/prospects", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthPassesWithCookie(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/prospects", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "session"})

	rec := httptest.NewRecorder()
	middleware.RequireAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
