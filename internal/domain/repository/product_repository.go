package repository

import (
	"context"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos (DIP).
type ProductRepository interface {
	ListAll(ctx context.Context) ([]*entity.Product, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
