package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/mlecomte/urbanstyle/internal/entity"
	"github.com/mlecomte/urbanstyle/internal/infra/database"
	"github.com/mlecomte/urbanstyle/internal/infra/http/handlers"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

// stubProber responde 2xx para qualquer candidata.
type stubProber struct{}

func (stubProber) Head(_ context.Context, _ string) (int, error) {
	return http.StatusOK, nil
}

func TestEnrichInlineSurvivesClientDisconnect(t *testing.T) {
	store := database.NewProspectFileStore(filepath.Join(t.TempDir(), "prospects.json"))
	assert.NoError(t, store.ReplaceAll(context.Background(), []entity.Prospect{
		{ID: "a", NomEntreprise: "Alpha"},
		{ID: "b", NomEntreprise: "Beta"},
	}))

	enricher := usecase.NewEnricher(store, stubProber{})
	enricher.Limiter = rate.NewLimiter(rate.Inf, 1)
	handler := handlers.NewEnrichHandler(enricher, nil)

	// Cliente já desconectado quando o batch começa.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/enrich", nil).WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.HandleTrigger(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	// Os dois prospects foram visitados, não só o primeiro.
	assert.Equal(t, float64(2), body["prospects_enriched"])
	assert.Empty(t, body["errors"])

	prospects, err := store.List(context.Background(), entity.ProspectFilters{})
	assert.NoError(t, err)
	assert.NotEmpty(t, prospects[0].SiteWeb)
	assert.NotEmpty(t, prospects[1].SiteWeb)
}
