package middleware

import (
	"encoding/json"
	"net/http"
)

// SessionCookieName é o cookie HTTP-only colocado no login.
const SessionCookieName = "prospect_auth"

// RequireAuth barra as rotas do back-office quando o cookie de sessão está
// ausente. A sessão é opaca: o valor só precisa existir (não há store de
// sessão server-side).
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Non authentifié"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
