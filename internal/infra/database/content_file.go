package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// ContentFileStore persiste o documento de conteúdo num único arquivo JSON
// pretty-printed. É o fallback de dev local e de indisponibilidade do banco.
type ContentFileStore struct {
	Path string
}

func NewContentFileStore(path string) *ContentFileStore {
	return &ContentFileStore{Path: path}
}

// GetAll devolve o documento padrão quando o arquivo não existe ou não parseia.
func (s *ContentFileStore) GetAll(_ context.Context) (entity.SiteContent, error) {
	bytes, err := os.ReadFile(s.Path)
	if err != nil {
		return entity.DefaultContent(), nil
	}

	var content entity.SiteContent
	if err := json.Unmarshal(bytes, &content); err != nil {
		return entity.DefaultContent(), nil
	}
	return content, nil
}

func (s *ContentFileStore) Replace(_ context.Context, content entity.SiteContent) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	bytes, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	if err := os.WriteFile(s.Path, bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write content file: %w", err)
	}
	return nil
}
