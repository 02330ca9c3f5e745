package usecase

import (
	"context"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// ContentStore persiste o documento único de conteúdo do site.
type ContentStore interface {
	GetAll(ctx context.Context) (entity.SiteContent, error)
	Replace(ctx context.Context, content entity.SiteContent) error
}

// ProspectStore persiste a lista plana de prospects.
type ProspectStore interface {
	List(ctx context.Context, filters entity.ProspectFilters) ([]entity.Prospect, error)
	Get(ctx context.Context, id string) (*entity.Prospect, error)
	Create(ctx context.Context, data map[string]any) (*entity.Prospect, error)
	Update(ctx context.Context, id string, data map[string]any) (*entity.Prospect, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (entity.Stats, error)
	ReplaceAll(ctx context.Context, prospects []entity.Prospect) error
}

// CampaignStore persiste as campanhas de outreach.
type CampaignStore interface {
	List(ctx context.Context) ([]entity.Campaign, error)
	Get(ctx context.Context, id string) (*entity.Campaign, error)
	Create(ctx context.Context, campaign *entity.Campaign) error
	Update(ctx context.Context, campaign *entity.Campaign) error
}

// Prober faz uma requisição HEAD e devolve o status HTTP. Erro de transporte
// (DNS, timeout, conexão recusada) vem como err != nil.
type Prober interface {
	Head(ctx context.Context, url string) (status int, err error)
}

// EnrichmentProducer publica um job de enriquecimento na fila.
type EnrichmentProducer interface {
	PublishEnrichment(ctx context.Context, payload EnrichmentJob) error
}

// MailSender envia um email de outreach para um prospect.
type MailSender interface {
	SendOutreach(to, subject, body string) error
}
