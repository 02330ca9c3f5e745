package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mlecomte/urbanstyle/internal/entity"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondFailure mapeia a taxonomia de erros para códigos REST:
// not-found 404, erro de domínio 400, resto 500 (logado).
func respondFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		respondError(w, http.StatusNotFound, "Non trouvé")
	case usecase.IsDomainError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("❌ Erreur serveur: %v", err)
		respondError(w, http.StatusInternalServerError, "Erreur serveur")
	}
}
