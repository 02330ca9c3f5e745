package entity

import (
	"encoding/json"
	"strconv"
)

// SiteContent é o documento único de conteúdo do site. As seções são
// dinâmicas: o admin pode gravar qualquer forma JSON em qualquer chave de
// topo (site, hero, advantages, bestsellers, products, contact, ...).
type SiteContent map[string]any

type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"` // tshirt | jean
	Sizes    []string `json:"sizes"`
	Image    string   `json:"image"`
	Color    string   `json:"color"`
	Active   bool     `json:"active"`
}

type Advantage struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Bestsellers struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Products    []string `json:"products"`
}

// Products decodifica a seção "products" do documento. Seção ausente ou com
// forma inesperada vira lista vazia, nunca erro.
func (c SiteContent) Products() []Product {
	raw, ok := c["products"]
	if !ok {
		return []Product{}
	}

	bytes, err := json.Marshal(raw)
	if err != nil {
		return []Product{}
	}

	var products []Product
	if err := json.Unmarshal(bytes, &products); err != nil {
		return []Product{}
	}
	return products
}

// NextProductID aloca o próximo id de produto: maior id numérico existente + 1.
func NextProductID(products []Product) string {
	maxID := 0
	for _, p := range products {
		if id, err := strconv.Atoi(p.ID); err == nil && id > maxID {
			maxID = id
		}
	}
	return strconv.Itoa(maxID + 1)
}

// DefaultContent é o documento semeado quando nem o banco nem o arquivo têm
// conteúdo. Os textos espelham o site UrbanStyle.
func DefaultContent() SiteContent {
	return SiteContent{
		"site": map[string]any{
			"name":        "URBANSTYLE",
			"tagline":     "STYLE",
			"description": "Votre destination mode pour des vêtements de qualité.",
			"email":       "contact@urbanstyle.fr",
			"phone":       "01 23 45 67 89",
			"address":     "123 Avenue de la Mode",
			"city":        "75001 Paris, France",
			"whatsapp":    "33123456789",
			"copyright":   "© 2024 UrbanStyle. Tous droits réservés.",
		},
		"hero": map[string]any{
			"badge":           "Nouvelle Collection 2024",
			"title":           "Style Urbain",
			"titleAccent":     "Qualité Premium",
			"description":     "Découvrez notre collection exclusive de t-shirts et jeans. Des pièces uniques pour un style qui vous ressemble.",
			"ctaText":         "Voir les Produits",
			"ctaSecondary":    "Nous Contacter",
			"backgroundImage": "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=1920&q=80",
		},
		"advantages": []any{},
		"bestsellers": map[string]any{
			"title":       "Nos Bestsellers",
			"description": "",
			"products":    []any{},
		},
		"products": []any{},
		"contact": map[string]any{
			"title":        "Contactez-nous",
			"subtitle":     "",
			"email":        "",
			"emailSupport": "",
			"phone":        "",
			"phoneHours":   "",
			"hours":        map[string]any{"weekdays": "", "saturday": "", "sunday": ""},
			"address":      "",
			"city":         "",
		},
		"productsPage": map[string]any{"title": "Nos Produits", "description": ""},
		"meta":         map[string]any{"title": "", "description": "", "keywords": ""},
	}
}
