package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductQuery parámetros del listado de catálogo (GET /api/products y storefronts).
type ProductQuery struct {
	Category string           `query:"category"`
	Search   string           `query:"q"`
	MinPrice *decimal.Decimal `query:"-"`
	MaxPrice *decimal.Decimal `query:"-"`
	Sort     string           `query:"sort"`
	StoreID  string           `query:"-"`
	PageRequest
}

// ProductCategory referencia de categoría tal como la conoce el producto.
type ProductCategory struct {
	Kind     string `json:"kind"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Rating      decimal.Decimal `json:"rating"`
	Category    ProductCategory `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
