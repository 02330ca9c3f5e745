package entity

import (
	"math/rand"
	"strconv"
	"time"
)

// Prospect é um lead B2B acompanhado no pipeline de prospecção. Os nomes de
// campo seguem o export SIRENE (francês) para manter compatibilidade com os
// arquivos JSON/CSV já existentes.
type Prospect struct {
	ID              string `json:"id"`
	Priorite        string `json:"priorite"` // Haute | Moyenne | Basse
	Score           int    `json:"score"`
	NomEntreprise   string `json:"nom_entreprise"`
	SiteWeb         string `json:"site_web"`
	LinkedIn        string `json:"linkedin"`
	ContactPrenom   string `json:"contact_prenom"`
	ContactNom      string `json:"contact_nom"`
	ContactPoste    string `json:"contact_poste"`
	Email           string `json:"email"`
	Telephone       string `json:"telephone"`
	Observation     string `json:"observation"`
	Statut          string `json:"statut"` // À contacter, Envoyé, Répondu, ...
	Notes           string `json:"notes"`
	DateContact     string `json:"date_contact"`
	Canal           string `json:"canal"`
	Reponse         string `json:"reponse"`
	DateRelance     string `json:"date_relance"`
	ProchaineAction string `json:"prochaine_action"`
	Ville           string `json:"ville"`
	CodePostal      string `json:"code_postal"`
	LibelleNaf      string `json:"libelle_naf"`
	Effectif        string `json:"effectif"`
	DateCreation    string `json:"date_creation"`
	Siren           string `json:"siren"`
	Siret           string `json:"siret"`
	Departement     string `json:"departement"`
	Adresse         string `json:"adresse"`
	CodeNaf         string `json:"code_naf"`
}

// Statuts do pipeline de outreach.
const (
	StatutAContacter   = "À contacter"
	StatutEnvoye       = "Envoyé"
	StatutRepondu      = "Répondu"
	StatutInteresse    = "Intéressé"
	StatutCallPlanifie = "Call planifié"
	StatutPasInteresse = "Pas intéressé"
	StatutConverti     = "Converti"
)

// ProspectFilters são conjuntivos: todo filtro presente precisa casar.
type ProspectFilters struct {
	Ville    string
	Secteur  string
	Statut   string
	Priorite string
	ScoreMin *int
	Search   string
}

type Stats struct {
	Total       int     `json:"total"`
	Contactes   int     `json:"contactes"`
	Reponses    int     `json:"reponses"`
	Conversions int     `json:"conversions"`
	TauxReponse float64 `json:"taux_reponse"`
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewProspectID gera um id opaco: timestamp em milissegundos + sufixo
// aleatório base36 de 9 caracteres.
func NewProspectID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + string(suffix)
}
