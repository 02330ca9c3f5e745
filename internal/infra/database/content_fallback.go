package database

import (
	"context"
	"errors"
	"log"

	"github.com/mlecomte/urbanstyle/internal/entity"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

// FallbackContentStore prefere o banco e degrada silenciosamente para o
// arquivo em qualquer erro do banco: o chamador nunca vê a troca. Na
// primeira leitura com a coleção vazia, semeia o banco com o conteúdo do
// arquivo (ou com o documento padrão, se o arquivo também não existir).
//
// Com o banco fora do ar, escritas vão só para o arquivo; não há
// reconciliação quando o banco volta.
type FallbackContentStore struct {
	Primary  usecase.ContentStore // mongo; pode ser nil quando não configurado
	Fallback usecase.ContentStore // arquivo
}

func NewFallbackContentStore(primary, fallback usecase.ContentStore) *FallbackContentStore {
	return &FallbackContentStore{Primary: primary, Fallback: fallback}
}

func (s *FallbackContentStore) GetAll(ctx context.Context) (entity.SiteContent, error) {
	if s.Primary == nil {
		return s.Fallback.GetAll(ctx)
	}

	content, err := s.Primary.GetAll(ctx)
	if err == nil {
		return content, nil
	}

	if errors.Is(err, entity.ErrNoDocument) {
		return s.seed(ctx)
	}

	log.Printf("⚠️ MongoDB indisponible, fallback fichier: %v", err)
	return s.Fallback.GetAll(ctx)
}

func (s *FallbackContentStore) Replace(ctx context.Context, content entity.SiteContent) error {
	if s.Primary != nil {
		err := s.Primary.Replace(ctx, content)
		if err == nil {
			return nil
		}
		log.Printf("⚠️ MongoDB indisponible, fallback fichier: %v", err)
	}
	return s.Fallback.Replace(ctx, content)
}

// SeedFromFile força a cópia do arquivo para o banco, com erro visível.
// É a versão explícita do seed usada pelo endpoint de inicialização.
func (s *FallbackContentStore) SeedFromFile(ctx context.Context) (entity.SiteContent, error) {
	content, err := s.Fallback.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Primary == nil {
		return nil, errors.New("mongodb is not configured")
	}

	if err := s.Primary.Replace(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// seed copia o conteúdo do arquivo para o banco na primeira leitura.
func (s *FallbackContentStore) seed(ctx context.Context) (entity.SiteContent, error) {
	content, err := s.Fallback.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Primary.Replace(ctx, content); err != nil {
		log.Printf("⚠️ Échec du seed MongoDB: %v", err)
	} else {
		log.Printf("🌱 Contenu initial semé dans MongoDB")
	}
	return content, nil
}
