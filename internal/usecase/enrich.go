package usecase

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// CandidateResolver devolve, em ordem de preferência, as URLs candidatas de
// site para um slug de empresa.
type CandidateResolver func(slug string) []string

// TLDs testados para empresas francesas, na ordem de probabilidade.
var defaultTLDs = []string{"com", "fr", "io", "co", "tech", "app"}

// DefaultResolver testa https://{slug}.{tld} e https://www.{slug}.{tld}
// para cada TLD.
func DefaultResolver(slug string) []string {
	candidates := make([]string, 0, len(defaultTLDs)*2)
	for _, tld := range defaultTLDs {
		candidates = append(candidates,
			fmt.Sprintf("https://%s.%s", slug, tld),
			fmt.Sprintf("https://www.%s.%s", slug, tld),
		)
	}
	return candidates
}

// Enricher preenche site_web e linkedin de prospects por tentativa de URL.
// É guesswork assumido: um HEAD 2xx num domínio adivinhado não prova que o
// site pertence à empresa. Os probes rodam sequencialmente, com o limiter
// espaçando os prospects para não disparar rajadas.
type Enricher struct {
	Store    ProspectStore
	Prober   Prober
	Resolver CandidateResolver
	Limiter  *rate.Limiter
}

func NewEnricher(store ProspectStore, prober Prober) *Enricher {
	return &Enricher{
		Store:    store,
		Prober:   prober,
		Resolver: DefaultResolver,
		Limiter:  rate.NewLimiter(rate.Every(500*time.Millisecond), 1), // pausa entre prospects
	}
}

// EnrichAll percorre todos os prospects e persiste a lista inteira ao final.
// Campos já preenchidos nunca são sobrescritos. Não há cancelamento parcial:
// um batch iniciado roda até o fim (erros de probe só pulam o campo).
func (e *Enricher) EnrichAll(ctx context.Context) (*EnrichmentResult, error) {
	prospects, err := e.Store.List(ctx, entity.ProspectFilters{})
	if err != nil {
		return nil, err
	}

	log.Printf("🔎 Enrichissement: %d prospects chargés", len(prospects))

	result := &EnrichmentResult{Errors: []string{}}

	for i := range prospects {
		p := &prospects[i]
		enriched := false

		if p.SiteWeb == "" && p.NomEntreprise != "" {
			if website := e.findWebsite(ctx, p.NomEntreprise); website != "" {
				p.SiteWeb = website
				enriched = true
				log.Printf("  ✅ [%d/%d] %s → %s", i+1, len(prospects), p.NomEntreprise, website)
			}
		}

		if p.LinkedIn == "" && p.NomEntreprise != "" {
			if linkedin := e.findLinkedIn(ctx, p.NomEntreprise); linkedin != "" {
				p.LinkedIn = linkedin
				enriched = true
			}
		}

		if enriched {
			result.EnrichedCount++
		}

		if err := e.Limiter.Wait(ctx); err != nil {
			// Contexto cancelado: grava o que já foi enriquecido e para.
			result.Errors = append(result.Errors, err.Error())
			break
		}
	}

	if err := e.Store.ReplaceAll(ctx, prospects); err != nil {
		return nil, err
	}

	log.Printf("💾 Enrichissement terminé: %d prospects enrichis", result.EnrichedCount)
	return result, nil
}

// findWebsite aceita a primeira candidata que responde 2xx; erro de
// transporte ou status fora da faixa só passa para a próxima.
func (e *Enricher) findWebsite(ctx context.Context, companyName string) string {
	slug := Slugify(companyName)
	if slug == "" {
		return ""
	}

	for _, candidate := range e.Resolver(slug) {
		status, err := e.Prober.Head(ctx, candidate)
		if err != nil {
			continue
		}
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			return candidate
		}
	}
	return ""
}

// findLinkedIn é otimista: o LinkedIn costuma bloquear bots, então erro de
// transporte conta como "a URL provavelmente existe". Só uma resposta
// não-2xx descarta o palpite.
func (e *Enricher) findLinkedIn(ctx context.Context, companyName string) string {
	slug := Slugify(companyName)
	if slug == "" {
		return ""
	}

	url := "https://www.linkedin.com/company/" + slug

	status, err := e.Prober.Head(ctx, url)
	if err != nil {
		return url
	}
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return url
	}
	return ""
}
