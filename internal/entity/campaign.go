package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campaign agrupa prospects para uma onda de emails de outreach.
type Campaign struct {
	ID           string        `json:"id"`
	Nom          string        `json:"nom"`
	DateCreation string        `json:"date_creation"`
	Prospects    []string      `json:"prospects"` // ids de Prospect
	Template     string        `json:"template"`
	Statut       string        `json:"statut"` // brouillon | active | terminee
	Stats        CampaignStats `json:"stats"`
}

type CampaignStats struct {
	Envoyes     int     `json:"envoyes"`
	Reponses    int     `json:"reponses"`
	TauxReponse float64 `json:"taux_reponse"`
}

const (
	CampaignBrouillon = "brouillon"
	CampaignActive    = "active"
	CampaignTerminee  = "terminee"
)

func NewCampaign(nom, template string, prospects []string) *Campaign {
	if prospects == nil {
		prospects = []string{}
	}
	return &Campaign{
		ID:           uuid.New().String(),
		Nom:          nom,
		DateCreation: time.Now().Format("2006-01-02"),
		Prospects:    prospects,
		Template:     template,
		Statut:       CampaignBrouillon,
	}
}
