package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mlecomte/urbanstyle/internal/entity"
	"github.com/mlecomte/urbanstyle/internal/infra/http/middleware"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

// ContentInitializer força o seed do banco a partir do arquivo local.
type ContentInitializer interface {
	SeedFromFile(ctx context.Context) (entity.SiteContent, error)
}

type ContentHandler struct {
	Service     *usecase.ContentService
	Initializer ContentInitializer
}

func NewContentHandler(service *usecase.ContentService, initializer ContentInitializer) *ContentHandler {
	return &ContentHandler{Service: service, Initializer: initializer}
}

func (h *ContentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	content, err := h.Service.GetAll(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, content)
}

type updateContentRequest struct {
	Section string `json:"section"`
	Data    any    `json:"data"`
}

// HandleUpdate substitui a seção indicada (ou faz merge no topo quando
// section vem vazia) e devolve o documento completo pós-escrita.
func (h *ContentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	content, err := h.Service.UpdateSection(r.Context(), req.Section, req.Data)
	if err != nil {
		respondFailure(w, err)
		return
	}

	middleware.RecordContentUpdate(req.Section)
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "data": content})
}

type patchContentRequest struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Value   any    `json:"value"`
}

func (h *ContentHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var req patchContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	if req.Section == "" || req.Field == "" {
		respondError(w, http.StatusBadRequest, "Section et field requis")
		return
	}

	content, err := h.Service.PatchField(r.Context(), req.Section, req.Field, req.Value)
	if err != nil {
		respondFailure(w, err)
		return
	}

	middleware.RecordContentUpdate(req.Section)
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "data": content})
}

func (h *ContentHandler) HandleInit(w http.ResponseWriter, r *http.Request) {
	content, err := h.Initializer.SeedFromFile(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}

	sections := make([]string, 0, len(content))
	for section := range content {
		sections = append(sections, section)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Base de données initialisée avec succès",
		"sections": sections,
	})
}
