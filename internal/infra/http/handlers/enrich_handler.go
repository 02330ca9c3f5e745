package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/mlecomte/urbanstyle/internal/infra/http/middleware"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

// EnrichHandler dispara o pipeline de enriquecimento. Com RabbitMQ
// configurado o job é publicado e o worker processa em background (202);
// sem fila, roda inline e devolve o resultado. O batch não é cancelável
// depois de iniciado, então a requisição pode demorar.
type EnrichHandler struct {
	Enricher *usecase.Enricher
	Producer usecase.EnrichmentProducer // nil quando RabbitMQ não está configurado
}

func NewEnrichHandler(enricher *usecase.Enricher, producer usecase.EnrichmentProducer) *EnrichHandler {
	return &EnrichHandler{Enricher: enricher, Producer: producer}
}

func (h *EnrichHandler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	log.Printf("🚀 Démarrage de l'enrichissement des prospects...")

	if h.Producer != nil {
		job := usecase.EnrichmentJob{
			RequestedBy: r.RemoteAddr,
			RequestedAt: time.Now().Format(time.RFC3339),
		}
		if err := h.Producer.PublishEnrichment(r.Context(), job); err != nil {
			respondFailure(w, err)
			return
		}
		respondJSON(w, http.StatusAccepted, map[string]any{"success": true, "queued": true})
		return
	}

	// O batch roda num contexto próprio: cliente que abandona a requisição
	// não aborta o enriquecimento já iniciado.
	result, err := h.Enricher.EnrichAll(context.Background())
	if err != nil {
		respondFailure(w, err)
		return
	}

	middleware.RecordProspectsEnriched(result.EnrichedCount)
	respondJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"prospects_enriched": result.EnrichedCount,
		"errors":             result.Errors,
	})
}
