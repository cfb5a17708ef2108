package repository

import (
	"context"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura del árbol de categorías (DIP).
// Las categorías las administra el backend del marketplace; aquí solo se leen snapshots.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
}
