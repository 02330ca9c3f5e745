package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlecomte/urbanstyle/internal/usecase"
)

type ProductHandler struct {
	Service *usecase.ContentService
}

func NewProductHandler(service *usecase.ContentService) *ProductHandler {
	return &ProductHandler{Service: service}
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.Service.ListProducts(r.Context())
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	product, err := h.Service.AddProduct(r.Context(), input)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "product": product})
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondError(w, http.StatusBadRequest, "JSON invalide")
		return
	}

	product, err := h.Service.UpdateProduct(r.Context(), id, updates)
	if err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteProduct(r.Context(), id); err != nil {
		respondFailure(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
