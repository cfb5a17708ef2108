package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mallofcayman/catalog-api/internal/domain"
	"github.com/mallofcayman/catalog-api/internal/domain/entity"
	"github.com/mallofcayman/catalog-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// CategoryRepo CategoryRepository sobre GET /categories.
type CategoryRepo struct {
	c *Client
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(c *Client) *CategoryRepo {
	return &CategoryRepo{c: c}
}

// ListAll conserva el orden en que responde el backend.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	items, err := r.c.getList(ctx, "/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]*entity.Category, 0, len(items))
	for _, raw := range items {
		var doc categoryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			// Documento corrupto: se omite y el resto del snapshot sigue sirviendo.
			continue
		}
		out = append(out, doc.toEntity())
	}
	return out, nil
}

// GetByID (nil, nil) si el backend responde 404.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	raw, found, err := r.c.getOne(ctx, "/categories/{id}", map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if !found {
		return nil, nil
	}
	var doc categoryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("get category: %w: %v", domain.ErrUpstream, err)
	}
	return doc.toEntity(), nil
}

// ProductRepo ProductRepository sobre GET /products y /stores/{storeId}/products.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// ListAll todos los productos publicados.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	items, err := r.c.getList(ctx, "/products", nil)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return decodeProducts(items), nil
}

// ListByStore productos de una tienda.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	items, err := r.c.getList(ctx, "/stores/{storeId}/products", map[string]string{"storeId": storeID})
	if err != nil {
		return nil, fmt.Errorf("list products by store: %w", err)
	}
	return decodeProducts(items), nil
}

// GetByID (nil, nil) si el backend responde 404.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	raw, found, err := r.c.getOne(ctx, "/products/{id}", map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !found {
		return nil, nil
	}
	var doc productDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("get product: %w: %v", domain.ErrUpstream, err)
	}
	return doc.toEntity(), nil
}

func decodeProducts(items []json.RawMessage) []*entity.Product {
	out := make([]*entity.Product, 0, len(items))
	for _, raw := range items {
		var doc productDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		out = append(out, doc.toEntity())
	}
	return out
}
