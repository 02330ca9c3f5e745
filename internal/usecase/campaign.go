package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// CampaignService cria campanhas de outreach e dispara os emails.
type CampaignService struct {
	Campaigns CampaignStore
	Prospects ProspectStore
	Mail      MailSender
}

func NewCampaignService(campaigns CampaignStore, prospects ProspectStore, mail MailSender) *CampaignService {
	return &CampaignService{Campaigns: campaigns, Prospects: prospects, Mail: mail}
}

func (s *CampaignService) List(ctx context.Context) ([]entity.Campaign, error) {
	return s.Campaigns.List(ctx)
}

func (s *CampaignService) Create(ctx context.Context, input CreateCampaignInput) (*entity.Campaign, error) {
	if strings.TrimSpace(input.Nom) == "" {
		return nil, &DomainError{Code: "MISSING_PARAMETER", Message: "nom is required"}
	}
	if strings.TrimSpace(input.Template) == "" {
		return nil, &DomainError{Code: "MISSING_PARAMETER", Message: "template is required"}
	}

	campaign := entity.NewCampaign(input.Nom, input.Template, input.Prospects)
	if err := s.Campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Send envia o template para cada prospect referenciado que tenha email.
// O placeholder {{nom_entreprise}} é substituído pelo nome da empresa.
// Falha num destinatário não aborta o resto da onda.
func (s *CampaignService) Send(ctx context.Context, id string) (*SendCampaignOutput, error) {
	campaign, err := s.Campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	output := &SendCampaignOutput{Errors: []string{}}

	for _, prospectID := range campaign.Prospects {
		prospect, err := s.Prospects.Get(ctx, prospectID)
		if err != nil {
			output.Errors = append(output.Errors, fmt.Sprintf("prospect %s: %v", prospectID, err))
			continue
		}
		if prospect.Email == "" {
			continue
		}

		body := strings.ReplaceAll(campaign.Template, "{{nom_entreprise}}", prospect.NomEntreprise)
		if err := s.Mail.SendOutreach(prospect.Email, campaign.Nom, body); err != nil {
			log.Printf("❌ Campagne %s: envoi vers %s échoué: %v", campaign.Nom, prospect.Email, err)
			output.Errors = append(output.Errors, fmt.Sprintf("%s: %v", prospect.Email, err))
			continue
		}

		output.Envoyes++

		// Primeiro contato registrado no pipeline.
		if prospect.Statut == entity.StatutAContacter || prospect.Statut == "" {
			if _, err := s.Prospects.Update(ctx, prospectID, map[string]any{"statut": entity.StatutEnvoye}); err != nil {
				output.Errors = append(output.Errors, fmt.Sprintf("prospect %s: %v", prospectID, err))
			}
		}
	}

	campaign.Stats.Envoyes += output.Envoyes
	campaign.Statut = entity.CampaignActive
	if err := s.Campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return output, nil
}
