package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jszwec/csvutil"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// csvProspect espelha as colunas do export SIRENE. O score chega como texto
// e é convertido depois; valor inválido vira 0.
type csvProspect struct {
	Priorite        string `csv:"priorite,omitempty"`
	Score           string `csv:"score,omitempty"`
	NomEntreprise   string `csv:"nom_entreprise,omitempty"`
	SiteWeb         string `csv:"site_web,omitempty"`
	LinkedIn        string `csv:"linkedin,omitempty"`
	ContactPrenom   string `csv:"contact_prenom,omitempty"`
	ContactNom      string `csv:"contact_nom,omitempty"`
	ContactPoste    string `csv:"contact_poste,omitempty"`
	Email           string `csv:"email,omitempty"`
	Telephone       string `csv:"telephone,omitempty"`
	Observation     string `csv:"observation,omitempty"`
	Statut          string `csv:"statut,omitempty"`
	Notes           string `csv:"notes,omitempty"`
	DateContact     string `csv:"date_contact,omitempty"`
	Canal           string `csv:"canal,omitempty"`
	Reponse         string `csv:"reponse,omitempty"`
	DateRelance     string `csv:"date_relance,omitempty"`
	ProchaineAction string `csv:"prochaine_action,omitempty"`
	Ville           string `csv:"ville,omitempty"`
	CodePostal      string `csv:"code_postal,omitempty"`
	LibelleNaf      string `csv:"libelle_naf,omitempty"`
	Effectif        string `csv:"effectif,omitempty"`
	DateCreation    string `csv:"date_creation,omitempty"`
	Siren           string `csv:"siren,omitempty"`
	Siret           string `csv:"siret,omitempty"`
	Departement     string `csv:"departement,omitempty"`
	Adresse         string `csv:"adresse,omitempty"`
	CodeNaf         string `csv:"code_naf,omitempty"`
}

// ParseProspects decodifica um CSV com cabeçalho em prospects novos, cada um
// com id recém-gerado.
func ParseProspects(r io.Reader) ([]entity.Prospect, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	decoder, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) {
		// Corpo sem nem cabeçalho: importação de zero prospects.
		return []entity.Prospect{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}
	// Colunas desconhecidas do export são ignoradas em vez de falhar.
	decoder.DisallowMissingColumns = false

	// io.EOF aqui é só cabeçalho sem linhas: lista vazia, não erro.
	var rows []csvProspect
	if err := decoder.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}

	prospects := make([]entity.Prospect, 0, len(rows))
	for _, row := range rows {
		score, err := strconv.Atoi(row.Score)
		if err != nil {
			score = 0
		}

		statut := row.Statut
		if statut == "" {
			statut = entity.StatutAContacter
		}

		prospects = append(prospects, entity.Prospect{
			ID:              entity.NewProspectID(),
			Priorite:        row.Priorite,
			Score:           score,
			NomEntreprise:   row.NomEntreprise,
			SiteWeb:         row.SiteWeb,
			LinkedIn:        row.LinkedIn,
			ContactPrenom:   row.ContactPrenom,
			ContactNom:      row.ContactNom,
			ContactPoste:    row.ContactPoste,
			Email:           row.Email,
			Telephone:       row.Telephone,
			Observation:     row.Observation,
			Statut:          statut,
			Notes:           row.Notes,
			DateContact:     row.DateContact,
			Canal:           row.Canal,
			Reponse:         row.Reponse,
			DateRelance:     row.DateRelance,
			ProchaineAction: row.ProchaineAction,
			Ville:           row.Ville,
			CodePostal:      row.CodePostal,
			LibelleNaf:      row.LibelleNaf,
			Effectif:        row.Effectif,
			DateCreation:    row.DateCreation,
			Siren:           row.Siren,
			Siret:           row.Siret,
			Departement:     row.Departement,
			Adresse:         row.Adresse,
			CodeNaf:         row.CodeNaf,
		})
	}
	return prospects, nil
}
