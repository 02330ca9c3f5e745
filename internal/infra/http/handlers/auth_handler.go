package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mlecomte/urbanstyle/internal/infra/http/middleware"
)

// AuthHandler valida a senha do admin e gerencia o cookie de sessão.
// Com ADMIN_PASSWORD_HASH definido a comparação é bcrypt; senão cai na
// comparação direta com ADMIN_PASSWORD (default admin123).
type AuthHandler struct {
	Password     string
	PasswordHash string
	MaxAge       int  // segundos
	Secure       bool // true atrás de TLS
}

func NewAuthHandler(password, passwordHash string, maxAge int, secure bool) *AuthHandler {
	if password == "" {
		password = "admin123"
	}
	if maxAge <= 0 {
		maxAge = 60 * 60 * 24 * 7 // 7 dias
	}
	return &AuthHandler{
		Password:     password,
		PasswordHash: passwordHash,
		MaxAge:       maxAge,
		Secure:       secure,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	if req.Password == "" {
		respondError(w, http.StatusBadRequest, "Mot de passe requis")
		return
	}

	if !h.verify(req.Password) {
		respondError(w, http.StatusUnauthorized, "Mot de passe incorrect")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    uuid.New().String(),
		Path:     "/",
		MaxAge:   h.MaxAge,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) verify(password string) bool {
	if h.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(password)) == nil
	}
	return password == h.Password
}
