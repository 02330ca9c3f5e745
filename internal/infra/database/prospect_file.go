package database

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// ProspectFileStore persiste os prospects como um único array JSON
// pretty-printed, reescrito por inteiro a cada mutação.
type ProspectFileStore struct {
	Path string
}

func NewProspectFileStore(path string) *ProspectFileStore {
	return &ProspectFileStore{Path: path}
}

// readAll trata arquivo inexistente como lista vazia, não como erro.
func (s *ProspectFileStore) readAll() ([]entity.Prospect, error) {
	bytes, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return []entity.Prospect{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read prospects file: %w", err)
	}

	var prospects []entity.Prospect
	if err := json.Unmarshal(bytes, &prospects); err != nil {
		return nil, fmt.Errorf("failed to parse prospects file: %w", err)
	}
	return prospects, nil
}

func (s *ProspectFileStore) writeAll(prospects []entity.Prospect) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	bytes, err := json.MarshalIndent(prospects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode prospects: %w", err)
	}

	if err := os.WriteFile(s.Path, bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write prospects file: %w", err)
	}
	return nil
}

// List aplica os filtros de forma conjuntiva e preserva a ordem do arquivo.
func (s *ProspectFileStore) List(_ context.Context, filters entity.ProspectFilters) ([]entity.Prospect, error) {
	prospects, err := s.readAll()
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Prospect, 0, len(prospects))
	for _, p := range prospects {
		if matchesFilters(p, filters) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func matchesFilters(p entity.Prospect, f entity.ProspectFilters) bool {
	if f.Ville != "" && !containsFold(p.Ville, f.Ville) {
		return false
	}
	if f.Secteur != "" && !containsFold(p.LibelleNaf, f.Secteur) {
		return false
	}
	if f.Statut != "" && p.Statut != f.Statut {
		return false
	}
	if f.Priorite != "" && p.Priorite != f.Priorite {
		return false
	}
	if f.ScoreMin != nil && p.Score < *f.ScoreMin {
		return false
	}
	if f.Search != "" {
		if !containsFold(p.NomEntreprise, f.Search) &&
			!containsFold(p.ContactPrenom, f.Search) &&
			!containsFold(p.ContactNom, f.Search) &&
			!containsFold(p.Email, f.Search) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *ProspectFileStore) Get(_ context.Context, id string) (*entity.Prospect, error) {
	prospects, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for i := range prospects {
		if prospects[i].ID == id {
			return &prospects[i], nil
		}
	}
	return nil, entity.ErrNotFound
}

// Create aceita um payload parcial, gera o id e anexa ao final do arquivo.
func (s *ProspectFileStore) Create(_ context.Context, data map[string]any) (*entity.Prospect, error) {
	prospects, err := s.readAll()
	if err != nil {
		return nil, err
	}

	prospect, err := decodeProspect(data)
	if err != nil {
		return nil, err
	}
	prospect.ID = entity.NewProspectID()

	prospects = append(prospects, *prospect)
	if err := s.writeAll(prospects); err != nil {
		return nil, err
	}
	return prospect, nil
}

// Update faz merge raso do payload no registro existente; o id não muda.
func (s *ProspectFileStore) Update(_ context.Context, id string, data map[string]any) (*entity.Prospect, error) {
	prospects, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for i := range prospects {
		if prospects[i].ID != id {
			continue
		}

		merged, err := mergeProspect(prospects[i], data)
		if err != nil {
			return nil, err
		}
		merged.ID = id
		prospects[i] = *merged

		if err := s.writeAll(prospects); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, entity.ErrNotFound
}

func (s *ProspectFileStore) Delete(_ context.Context, id string) error {
	prospects, err := s.readAll()
	if err != nil {
		return err
	}

	kept := make([]entity.Prospect, 0, len(prospects))
	for _, p := range prospects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(prospects) {
		return entity.ErrNotFound
	}
	return s.writeAll(kept)
}

// Stats: contactes = statut ∈ {Envoyé, Répondu, Converti}; reponses =
// reponse == "Oui" ou statut == Répondu; taux arredondado a uma decimal.
func (s *ProspectFileStore) Stats(_ context.Context) (entity.Stats, error) {
	prospects, err := s.readAll()
	if err != nil {
		return entity.Stats{}, err
	}

	stats := entity.Stats{Total: len(prospects)}
	for _, p := range prospects {
		switch p.Statut {
		case entity.StatutEnvoye, entity.StatutRepondu, entity.StatutConverti:
			stats.Contactes++
		}
		if p.Reponse == "Oui" || p.Statut == entity.StatutRepondu {
			stats.Reponses++
		}
		if p.Statut == entity.StatutConverti {
			stats.Conversions++
		}
	}

	if stats.Contactes > 0 {
		taux := float64(stats.Reponses) / float64(stats.Contactes) * 100
		stats.TauxReponse = math.Round(taux*10) / 10
	}
	return stats, nil
}

func (s *ProspectFileStore) ReplaceAll(_ context.Context, prospects []entity.Prospect) error {
	if prospects == nil {
		prospects = []entity.Prospect{}
	}
	return s.writeAll(prospects)
}

func decodeProspect(data map[string]any) (*entity.Prospect, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prospect payload: %w", err)
	}

	var prospect entity.Prospect
	if err := json.Unmarshal(bytes, &prospect); err != nil {
		return nil, fmt.Errorf("failed to decode prospect payload: %w", err)
	}
	return &prospect, nil
}

func mergeProspect(current entity.Prospect, data map[string]any) (*entity.Prospect, error) {
	base, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prospect: %w", err)
	}

	var asMap map[string]any
	if err := json.Unmarshal(base, &asMap); err != nil {
		return nil, fmt.Errorf("failed to decode prospect: %w", err)
	}

	for k, v := range data {
		asMap[k] = v
	}
	return decodeProspect(asMap)
}
