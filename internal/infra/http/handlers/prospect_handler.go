package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlecomte/urbanstyle/internal/entity"
	csvimport "github.com/mlecomte/urbanstyle/internal/infra/csv"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

type ProspectHandler struct {
	Store usecase.ProspectStore
}

func NewProspectHandler(store usecase.ProspectStore) *ProspectHandler {
	return &ProspectHandler{Store: store}
}

// HandleList aceita os filtros em query string: ville, secteur, statut,
// priorite, score_min, search.
func (h *ProspectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := entity.ProspectFilters{
		Ville:    query.Get("ville"),
		Secteur:  query.Get("secteur"),
		Statut:   query.Get("statut"),
		Priorite: query.Get("priorite"),
		Search:   query.Get("search"),
	}
	if raw := query.Get("score_min"); raw != "" {
		if scoreMin, err := strconv.Atoi(raw); err == nil {
			filters.ScoreMin = &scoreMin
		}
	}

	prospects, err := h.Store.List(r.Context(), filters)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prospects)
}

func (h *ProspectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	prospect, err := h.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prospect)
}

func (h *ProspectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	prospect, err := h.Store.Create(r.Context(), data)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, prospect)
}

func (h *ProspectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	prospect, err := h.Store.Update(r.Context(), chi.URLParam(r, "id"), data)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prospect)
}

func (h *ProspectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *ProspectHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.Stats(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// HandleImport substitui a lista inteira pelo CSV enviado no corpo.
func (h *ProspectHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	prospects, err := csvimport.ParseProspects(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "CSV invalide")
		return
	}

	if err := h.Store.ReplaceAll(r.Context(), prospects); err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "imported": len(prospects)})
}
