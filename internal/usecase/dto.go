package usecase

// EnrichmentJob é o payload publicado na fila quando o enriquecimento roda
// de forma assíncrona.
type EnrichmentJob struct {
	RequestedBy string `json:"requested_by"`
	RequestedAt string `json:"requested_at"`
}

// EnrichmentResult resume uma passada completa do pipeline.
type EnrichmentResult struct {
	EnrichedCount int      `json:"enrichedCount"`
	Errors        []string `json:"errors"`
}

type CreateCampaignInput struct {
	Nom       string   `json:"nom"`
	Template  string   `json:"template"`
	Prospects []string `json:"prospects"`
}

type SendCampaignOutput struct {
	Envoyes int      `json:"envoyes"`
	Errors  []string `json:"errors"`
}
