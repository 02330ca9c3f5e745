package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlecomte/urbanstyle/internal/infra/http/middleware"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

type CampaignHandler struct {
	Service *usecase.CampaignService
}

func NewCampaignHandler(service *usecase.CampaignService) *CampaignHandler {
	return &CampaignHandler{Service: service}
}

func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.List(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, campaigns)
}

func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	campaign, err := h.Service.Create(r.Context(), input)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	output, err := h.Service.Send(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFailure(w, err)
		return
	}

	middleware.RecordCampaignMails(output.Envoyes)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"envoyes": output.Envoyes,
		"errors":  output.Errors,
	})
}
