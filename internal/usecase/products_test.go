package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlecomte/urbanstyle/internal/entity"
	"github.com/mlecomte/urbanstyle/internal/usecase"
)

func storeWithProducts(products []any, bestsellerRefs []any) *memContentStore {
	store := newMemContentStore()
	store.content["products"] = products
	store.content["bestsellers"] = map[string]any{
		"title":    "Nos Bestsellers",
		"products": bestsellerRefs,
	}
	return store
}

func TestAddProductAllocatesMaxIDPlusOne(t *testing.T) {
	store := storeWithProducts([]any{
		map[string]any{"id": "1", "name": "Tee Noir"},
		map[string]any{"id": "3", "name": "Jean Brut"},
	}, []any{})
	service := usecase.NewContentService(store)

	product, err := service.AddProduct(context.Background(), map[string]any{"name": "Tee Blanc", "price": 29.9})

	assert.NoError(t, err)
	// max+1, não count+1: o id "2" removido nunca é reutilizado.
	assert.Equal(t, "4", product["id"])
	assert.Equal(t, true, product["active"])

	products, err := service.ListProducts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestAddProductKeepsExplicitActiveFlag(t *testing.T) {
	service := usecase.NewContentService(storeWithProducts([]any{}, []any{}))

	product, err := service.AddProduct(context.Background(), map[string]any{"name": "Archive", "active": false})

	assert.NoError(t, err)
	assert.Equal(t, "1", product["id"])
	assert.Equal(t, false, product["active"])
}

func TestUpdateProductMergesFields(t *testing.T) {
	store := storeWithProducts([]any{
		map[string]any{"id": "1", "name": "Tee Noir", "price": 19.9, "color": "noir"},
	}, []any{})
	service := usecase.NewContentService(store)

	product, err := service.UpdateProduct(context.Background(), "1", map[string]any{"price": 24.9})

	assert.NoError(t, err)
	assert.Equal(t, 24.9, product["price"])
	assert.Equal(t, "Tee Noir", product["name"])
	assert.Equal(t, "noir", product["color"])
}

func TestUpdateProductNotFound(t *testing.T) {
	service := usecase.NewContentService(storeWithProducts([]any{}, []any{}))

	_, err := service.UpdateProduct(context.Background(), "99", map[string]any{"price": 1})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteProductPrunesBestsellerReference(t *testing.T) {
	store := storeWithProducts([]any{
		map[string]any{"id": "1", "name": "Tee Noir"},
		map[string]any{"id": "2", "name": "Jean Brut"},
	}, []any{"1", "2"})
	service := usecase.NewContentService(store)

	err := service.DeleteProduct(context.Background(), "1")
	assert.NoError(t, err)

	content, _ := store.GetAll(context.Background())
	bestsellers := content["bestsellers"].(map[string]any)
	assert.Equal(t, []any{"2"}, bestsellers["products"])

	products, _ := service.ListProducts(context.Background())
	assert.Len(t, products, 1)
	assert.Equal(t, "2", products[0].ID)
}

func TestDeleteProductTwiceReportsNotFound(t *testing.T) {
	store := storeWithProducts([]any{
		map[string]any{"id": "1", "name": "Tee Noir"},
	}, []any{})
	service := usecase.NewContentService(store)

	assert.NoError(t, service.DeleteProduct(context.Background(), "1"))
	assert.ErrorIs(t, service.DeleteProduct(context.Background(), "1"), entity.ErrNotFound)
}
