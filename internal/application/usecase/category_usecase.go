package usecase

import (
	"context"

	"github.com/mallofcayman/catalog-api/internal/application/dto"
	"github.com/mallofcayman/catalog-api/internal/application/ports"
	"github.com/mallofcayman/catalog-api/internal/domain/catalog"
	"github.com/mallofcayman/catalog-api/internal/domain/entity"
	"github.com/mallofcayman/catalog-api/internal/domain/repository"
)

// CategoryUseCase consultas sobre el árbol de categorías (lista, árbol, resolución, breadcrumb).
type CategoryUseCase struct {
	snapshots *snapshotLoader
}

// NewCategoryUseCase construye el caso de uso. cache puede ser nil.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, cache ports.SelectionCache, cfg CatalogConfig) *CategoryUseCase {
	return &CategoryUseCase{snapshots: newSnapshotLoader(categoryRepo, cache, cfg)}
}

// List devuelve todas las categorías en el orden de la fuente.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	snap, err := uc.snapshots.load(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, snap.index.Len())
	for _, c := range snap.index.Categories() {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Version: snap.version}, nil
}

// Tree devuelve el árbol anidado.
func (uc *CategoryUseCase) Tree(ctx context.Context) (*dto.CategoryTreeResponse, error) {
	snap, err := uc.snapshots.load(ctx)
	if err != nil {
		return nil, err
	}
	nodes := snap.index.BuildTree()
	roots := make([]dto.CategoryTreeNode, 0, len(nodes))
	for _, n := range nodes {
		roots = append(roots, toTreeNode(n))
	}
	return &dto.CategoryTreeResponse{Roots: roots, Version: snap.version}, nil
}

// Resolve devuelve los IDs que cuentan como la categoría name (ella y todos sus descendientes).
// Un nombre desconocido produce Found=false e IDs vacíos.
func (uc *CategoryUseCase) Resolve(ctx context.Context, name string) (*dto.ResolvedSelectionResponse, error) {
	snap, err := uc.snapshots.load(ctx)
	if err != nil {
		return nil, err
	}
	_, found := snap.index.Lookup(name)
	sel := uc.snapshots.resolve(ctx, snap, name)
	ids := []string{}
	if sel != nil {
		ids = sel.IDs()
	}
	return &dto.ResolvedSelectionResponse{Name: name, IDs: ids, Found: found}, nil
}

// Breadcrumb devuelve la ruta raíz → categoría. Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) Breadcrumb(ctx context.Context, id string) (*dto.BreadcrumbResponse, error) {
	snap, err := uc.snapshots.load(ctx)
	if err != nil {
		return nil, err
	}
	path := snap.index.Ancestors(id)
	if path == nil {
		return nil, nil
	}
	items := make([]dto.CategoryResponse, 0, len(path))
	for _, c := range path {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.BreadcrumbResponse{Items: items}, nil
}

// InvalidateCache purga las selecciones memoizadas (p. ej. tras editar categorías en el admin).
func (uc *CategoryUseCase) InvalidateCache(ctx context.Context) error {
	return uc.snapshots.invalidate(ctx)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, ParentID: c.ParentID, Name: c.DisplayName()}
}

func toTreeNode(n *catalog.CategoryNode) dto.CategoryTreeNode {
	children := make([]dto.CategoryTreeNode, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, toTreeNode(child))
	}
	return dto.CategoryTreeNode{ID: n.Category.ID, Name: n.Category.DisplayName(), Children: children}
}
