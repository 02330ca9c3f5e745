package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlecomte/urbanstyle/internal/entity"
	"github.com/mlecomte/urbanstyle/internal/infra/database"
)

func newProspectStore(t *testing.T) *database.ProspectFileStore {
	t.Helper()
	return database.NewProspectFileStore(filepath.Join(t.TempDir(), "prospects.json"))
}

func seedProspects(t *testing.T, store *database.ProspectFileStore, prospects []entity.Prospect) {
	t.Helper()
	assert.NoError(t, store.ReplaceAll(context.Background(), prospects))
}

func TestListMissingFileReturnsEmptyList(t *testing.T) {
	store := newProspectStore(t)

	prospects, err := store.List(context.Background(), entity.ProspectFilters{})

	assert.NoError(t, err)
	assert.Empty(t, prospects)
}

func TestListWithoutFiltersPreservesFileOrder(t *testing.T) {
	store := newProspectStore(t)
	seedProspects(t, store, []entity.Prospect{
		{ID: "a", NomEntreprise: "Alpha"},
		{ID: "b", NomEntreprise: "Beta"},
		{ID: "c", NomEntreprise: "Gamma"},
	})

	prospects, err := store.List(context.Background(), entity.ProspectFilters{})

	assert.NoError(t, err)
	assert.Len(t, prospects, 3)
	assert.Equal(t, "a", prospects[0].ID)
	assert.Equal(t, "b", prospects[1].ID)
	assert.Equal(t, "c", prospects[2].ID)
}

func TestListFiltersAreConjunctive(t *testing.T) {
	store := newProspectStore(t)
	scoreMin := 5
	seedProspects(t, store, []entity.Prospect{
		{ID: "a", Ville: "Paris", Statut: entity.StatutConverti, Score: 8},
		{ID: "b", Ville: "Paris", Statut: entity.StatutConverti, Score: 2},
		{ID: "c", Ville: "Lyon", Statut: entity.StatutConverti, Score: 9},
		{ID: "d", Ville: "Paris", Statut: entity.StatutEnvoye, Score: 9},
	})

	prospects, err := store.List(context.Background(), entity.ProspectFilters{
		Ville:    "paris",
		Statut:   entity.StatutConverti,
		ScoreMin: &scoreMin,
	})

	assert.NoError(t, err)
	assert.Len(t, prospects, 1)
	assert.Equal(t, "a", prospects[0].ID)
}

func TestListStatutFilterIsExactMatch(t *testing.T) {
	store := newProspectStore(t)
	seedProspects(t, store, []entity.Prospect{
		{ID: "a", Statut: entity.StatutConverti},
		{ID: "b", Statut: entity.StatutEnvoye},
		{ID: "c", Statut: entity.StatutConverti},
	})

	prospects, err := store.List(context.Background(), entity.ProspectFilters{Statut: entity.StatutConverti})

	assert.NoError(t, err)
	assert.Len(t, prospects, 2)
	for _, p := range prospects {
		assert.Equal(t, entity.StatutConverti, p.Statut)
	}
}

func TestListSearchMatchesAnyContactField(t *testing.T) {
	store := newProspectStore(t)
	seedProspects(t, store, []entity.Prospect{
		{ID: "a", NomEntreprise: "Café & Cie"},
		{ID: "b", ContactPrenom: "Cafer"},
		{ID: "c", Email: "contact@lecafe.fr"},
		{ID: "d", NomEntreprise: "Boulangerie"},
	})

	prospects, err := store.List(context.Background(), entity.ProspectFilters{Search: "café"})

	assert.NoError(t, err)
	// A busca ignora maiúsculas mas não acentos:
	// "café" só casa com "Café & Cie".
	assert.Len(t, prospects, 1)
	assert.Equal(t, "a", prospects[0].ID)

	prospects, err = store.List(context.Background(), entity.ProspectFilters{Search: "cafe"})
	assert.NoError(t, err)
	assert.Len(t, prospects, 2) // "Cafer" e "lecafe.fr"
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	store := newProspectStore(t)

	first, err := store.Create(context.Background(), map[string]any{"nom_entreprise": "Alpha"})
	assert.NoError(t, err)
	second, err := store.Create(context.Background(), map[string]any{"nom_entreprise": "Beta"})
	assert.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	prospects, _ := store.List(context.Background(), entity.ProspectFilters{})
	assert.Len(t, prospects, 2)
}

func TestGetNotFound(t *testing.T) {
	store := newProspectStore(t)

	_, err := store.Get(context.Background(), "inconnu")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateMergesPartialPayload(t *testing.T) {
	store := newProspectStore(t)
	seedProspects(t, store, []entity.Prospect{
		{ID: "a", NomEntreprise: "Alpha", Ville: "Paris", Score: 3},
	})

	updated, err := store.Update(context.Background(), "a", map[string]any{"statut": entity.StatutRepondu, "score": 7})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatutRepondu, updated.Statut)
	assert.Equal(t, 7, updated.Score)
	// Campos não mencionados ficam intactos.
	assert.Equal(t, "Alpha", updated.NomEntreprise)
	assert.Equal(t, "Paris", updated.Ville)
	assert.Equal(t, "a", updated.ID)
}

func TestUpdateNotFound(t *testing.T) {
	store := newProspectStore(t)

	_, err := store.Update(context.Background(), "inconnu", map[string]any{"score": 1})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteIsIdempotentlyNotFound(t *testing.T) {
	store := newProspectStore(t)
	seedProspects(t, store, []entity.Prospect{{ID: "a"}})

	assert.NoError(t, store.Delete(context.Background(), "a"))
	assert.ErrorIs(t, store.Delete(context.Background(), "a"), entity.ErrNotFound)
}

func TestStatsOnEmptyStore(t *testing.T) {
	store := newProspectStore(t)

	stats, err := store.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, entity.Stats{}, stats)
}

func TestStatsFormulas(t *testing.T) {
	store := newProspectStore(t)
	seedProspects(t, store, []entity.Prospect{
		{ID: "a", Statut: entity.StatutEnvoye},
		{ID: "b", Statut: entity.StatutRepondu},
		{ID: "c", Statut: entity.StatutConverti},
		{ID: "d", Statut: entity.StatutAContacter},
	})

	stats, err := store.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Contactes)
	assert.Equal(t, 1, stats.Reponses) // só o "Répondu"
	assert.Equal(t, 1, stats.Conversions)
	assert.Equal(t, 33.3, stats.TauxReponse)
}

func TestStatsCountsExplicitReponseOui(t *testing.T) {
	store := newProspectStore(t)
	seedProspects(t, store, []entity.Prospect{
		{ID: "a", Statut: entity.StatutEnvoye, Reponse: "Oui"},
		{ID: "b", Statut: entity.StatutEnvoye},
	})

	stats, err := store.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Contactes)
	assert.Equal(t, 1, stats.Reponses)
	assert.Equal(t, 50.0, stats.TauxReponse)
}
