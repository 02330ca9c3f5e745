package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// CampaignFileStore persiste as campanhas num array JSON, como os prospects.
type CampaignFileStore struct {
	Path string
}

func NewCampaignFileStore(path string) *CampaignFileStore {
	return &CampaignFileStore{Path: path}
}

func (s *CampaignFileStore) readAll() ([]entity.Campaign, error) {
	bytes, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return []entity.Campaign{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read campaigns file: %w", err)
	}

	var campaigns []entity.Campaign
	if err := json.Unmarshal(bytes, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to parse campaigns file: %w", err)
	}
	return campaigns, nil
}

func (s *CampaignFileStore) writeAll(campaigns []entity.Campaign) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	bytes, err := json.MarshalIndent(campaigns, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode campaigns: %w", err)
	}

	if err := os.WriteFile(s.Path, bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write campaigns file: %w", err)
	}
	return nil
}

func (s *CampaignFileStore) List(_ context.Context) ([]entity.Campaign, error) {
	return s.readAll()
}

func (s *CampaignFileStore) Get(_ context.Context, id string) (*entity.Campaign, error) {
	campaigns, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for i := range campaigns {
		if campaigns[i].ID == id {
			return &campaigns[i], nil
		}
	}
	return nil, entity.ErrNotFound
}

func (s *CampaignFileStore) Create(_ context.Context, campaign *entity.Campaign) error {
	campaigns, err := s.readAll()
	if err != nil {
		return err
	}
	return s.writeAll(append(campaigns, *campaign))
}

func (s *CampaignFileStore) Update(_ context.Context, campaign *entity.Campaign) error {
	campaigns, err := s.readAll()
	if err != nil {
		return err
	}

	for i := range campaigns {
		if campaigns[i].ID == campaign.ID {
			campaigns[i] = *campaign
			return s.writeAll(campaigns)
		}
	}
	return entity.ErrNotFound
}
