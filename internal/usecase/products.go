package usecase

import (
	"context"
	"encoding/json"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

// Operações de catálogo: os produtos moram dentro da seção "products" do
// documento de conteúdo, então todo CRUD aqui passa pelo mesmo
// read-modify-write do ContentService.

func (s *ContentService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	content, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return content.Products(), nil
}

// AddProduct aloca id = maior id numérico existente + 1 (não count+1, para
// nunca reusar id de produto removido) e aplica active=true por padrão.
// Campos extras do payload são persistidos como vieram.
func (s *ContentService) AddProduct(ctx context.Context, input map[string]any) (map[string]any, error) {
	content, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	products := productMaps(content)

	newProduct := make(map[string]any, len(input)+2)
	for k, v := range input {
		newProduct[k] = v
	}
	newProduct["id"] = entity.NextProductID(content.Products())
	if _, ok := newProduct["active"]; !ok {
		newProduct["active"] = true
	}

	products = append(products, newProduct)
	content["products"] = products

	if err := s.Store.Replace(ctx, content); err != nil {
		return nil, err
	}
	return newProduct, nil
}

// UpdateProduct faz merge raso de updates no produto com o id dado.
func (s *ContentService) UpdateProduct(ctx context.Context, id string, updates map[string]any) (map[string]any, error) {
	content, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	products := productMaps(content)
	index := indexOfProduct(products, id)
	if index < 0 {
		return nil, entity.ErrNotFound
	}

	for k, v := range updates {
		if k == "id" {
			continue
		}
		products[index][k] = v
	}
	content["products"] = products

	if err := s.Store.Replace(ctx, content); err != nil {
		return nil, err
	}
	return products[index], nil
}

// DeleteProduct remove o produto e poda a referência em bestsellers.products.
// Segundo delete do mesmo id devolve ErrNotFound.
func (s *ContentService) DeleteProduct(ctx context.Context, id string) error {
	content, err := s.Store.GetAll(ctx)
	if err != nil {
		return err
	}

	products := productMaps(content)
	index := indexOfProduct(products, id)
	if index < 0 {
		return entity.ErrNotFound
	}

	content["products"] = append(products[:index], products[index+1:]...)

	if bestsellers, ok := content["bestsellers"].(map[string]any); ok {
		if refs, ok := bestsellers["products"].([]any); ok {
			kept := make([]any, 0, len(refs))
			for _, ref := range refs {
				if refID, _ := ref.(string); refID != id {
					kept = append(kept, ref)
				}
			}
			bestsellers["products"] = kept
			content["bestsellers"] = bestsellers
		}
	}

	return s.Store.Replace(ctx, content)
}

// productMaps decodifica a seção "products" preservando campos arbitrários.
func productMaps(content entity.SiteContent) []map[string]any {
	raw, ok := content["products"]
	if !ok {
		return []map[string]any{}
	}

	bytes, err := json.Marshal(raw)
	if err != nil {
		return []map[string]any{}
	}

	var products []map[string]any
	if err := json.Unmarshal(bytes, &products); err != nil {
		return []map[string]any{}
	}
	return products
}

func indexOfProduct(products []map[string]any, id string) int {
	for i, p := range products {
		if pid, _ := p["id"].(string); pid == id {
			return i
		}
	}
	return -1
}
