package usecase

import (
	"context"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// ContentService expõe leitura e mutação por seção do documento de conteúdo.
// Toda mutação é read-modify-write do documento inteiro via ContentStore;
// não há locking parcial (last writer wins).
type ContentService struct {
	Store ContentStore
}

func NewContentService(store ContentStore) *ContentService {
	return &ContentService{Store: store}
}

func (s *ContentService) GetAll(ctx context.Context) (entity.SiteContent, error) {
	return s.Store.GetAll(ctx)
}

// UpdateSection substitui a seção inteira quando section é informada; com
// section vazia, faz merge raso das chaves de data no topo do documento.
// Nenhuma validação de forma: o payload do admin é persistido como veio.
func (s *ContentService) UpdateSection(ctx context.Context, section string, data any) (entity.SiteContent, error) {
	content, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if section != "" {
		content[section] = data
	} else {
		merge, ok := data.(map[string]any)
		if !ok {
			return nil, &DomainError{Code: "INVALID_PAYLOAD", Message: "data must be an object when no section is given"}
		}
		for k, v := range merge {
			content[k] = v
		}
	}

	if err := s.Store.Replace(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// PatchField grava document[section][field] = value, criando a seção como
// mapa vazio se não existir. Seções que não são mapas são sobrescritas.
func (s *ContentService) PatchField(ctx context.Context, section, field string, value any) (entity.SiteContent, error) {
	if section == "" || field == "" {
		return nil, &DomainError{Code: "MISSING_PARAMETER", Message: "section and field are required"}
	}

	content, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sec, ok := content[section].(map[string]any)
	if !ok {
		sec = map[string]any{}
	}
	sec[field] = value
	content[section] = sec

	if err := s.Store.Replace(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}
