package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mallofcayman/catalog-api/internal/application/dto"
	"github.com/mallofcayman/catalog-api/internal/application/ports"
	"github.com/mallofcayman/catalog-api/internal/domain"
	"github.com/mallofcayman/catalog-api/internal/domain/catalog"
	"github.com/mallofcayman/catalog-api/internal/domain/entity"
	"github.com/mallofcayman/catalog-api/internal/domain/repository"
)

// CatalogUseCase listado del catálogo: categoría (con descendientes), búsqueda, precio, orden y paginación.
// Lee snapshots de categorías y productos en cada petición; no guarda estado propio salvo la caché.
type CatalogUseCase struct {
	snapshots *snapshotLoader
	products  repository.ProductRepository
	pdf       ports.CatalogPDFGenerator
	feed      ports.ProductFeedBuilder
	now       func() time.Time
}

// NewCatalogUseCase construye el caso de uso. cache, pdf y feed pueden ser nil.
func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	cache ports.SelectionCache,
	pdf ports.CatalogPDFGenerator,
	feed ports.ProductFeedBuilder,
	cfg CatalogConfig,
) *CatalogUseCase {
	return &CatalogUseCase{
		snapshots: newSnapshotLoader(categoryRepo, cache, cfg),
		products:  productRepo,
		pdf:       pdf,
		feed:      feed,
		now:       time.Now,
	}
}

// ListProducts devuelve la página pedida del catálogo filtrado.
// Una categoría inexistente no es error: devuelve una lista vacía.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, in dto.ProductQuery) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	filtered, _, err := uc.filter(ctx, in)
	if err != nil {
		return nil, err
	}
	page, total := catalog.Paginate(filtered, in.Limit, in.Offset)

	items := make([]dto.ProductResponse, 0, len(page))
	for _, p := range page {
		if p == nil {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// GetProduct obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catálogo: obtener producto: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// ExportPDF genera el PDF del listado filtrado completo (sin paginar).
func (uc *CatalogUseCase) ExportPDF(ctx context.Context, in dto.ProductQuery) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("catálogo: exportación PDF no configurada")
	}
	export, err := uc.export(ctx, in, "Catálogo de productos")
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, export)
}

// ProductFeed genera el feed XML del listado filtrado completo.
func (uc *CatalogUseCase) ProductFeed(ctx context.Context, in dto.ProductQuery) ([]byte, error) {
	if uc.feed == nil {
		return nil, fmt.Errorf("catálogo: feed XML no configurado")
	}
	export, err := uc.export(ctx, in, "Mall of Cayman")
	if err != nil {
		return nil, err
	}
	return uc.feed.BuildProductFeed(ctx, export)
}

func (uc *CatalogUseCase) export(ctx context.Context, in dto.ProductQuery, title string) (ports.CatalogExport, error) {
	filtered, snap, err := uc.filter(ctx, in)
	if err != nil {
		return ports.CatalogExport{}, err
	}
	names := make(map[string]string, snap.index.Len())
	for _, c := range snap.index.Categories() {
		names[c.ID] = c.DisplayName()
	}
	return ports.CatalogExport{
		Title:         title,
		Category:      in.Category,
		GeneratedAt:   uc.now(),
		Products:      filtered,
		CategoryNames: names,
	}, nil
}

// filter valida la consulta, carga ambos snapshots en paralelo y aplica el pipeline completo.
func (uc *CatalogUseCase) filter(ctx context.Context, in dto.ProductQuery) ([]*entity.Product, *categorySnapshot, error) {
	q, err := toFilterQuery(in)
	if err != nil {
		return nil, nil, err
	}

	type snapshotResult struct {
		snap *categorySnapshot
		err  error
	}
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	snapCh := make(chan snapshotResult, 1)
	prodCh := make(chan productsResult, 1)

	go func() {
		snap, err := uc.snapshots.load(ctx)
		snapCh <- snapshotResult{snap, err}
	}()
	go func() {
		var list []*entity.Product
		var err error
		if in.StoreID != "" {
			list, err = uc.products.ListByStore(ctx, in.StoreID)
		} else {
			list, err = uc.products.ListAll(ctx)
		}
		prodCh <- productsResult{list, err}
	}()

	snap := <-snapCh
	prods := <-prodCh
	if snap.err != nil {
		return nil, nil, snap.err
	}
	if prods.err != nil {
		return nil, nil, fmt.Errorf("catálogo: cargar productos: %w", prods.err)
	}

	sel := uc.snapshots.resolve(ctx, snap.snap, q.Category)
	return catalog.ApplyFiltersWithSelection(prods.list, snap.snap.index, sel, q), snap.snap, nil
}

func toFilterQuery(in dto.ProductQuery) (catalog.FilterQuery, error) {
	sortKey, ok := catalog.ParseSortKey(in.Sort)
	if !ok {
		return catalog.FilterQuery{}, fmt.Errorf("%w: sort %q no soportado", domain.ErrInvalidInput, in.Sort)
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return catalog.FilterQuery{}, fmt.Errorf("%w: min_price mayor que max_price", domain.ErrInvalidInput)
	}
	return catalog.FilterQuery{
		Category: in.Category,
		Search:   in.Search,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     sortKey,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Rating:      p.Rating,
		Category: dto.ProductCategory{
			Kind:     p.Category.Kind.String(),
			ID:       p.Category.ID,
			Name:     p.Category.Name,
			ParentID: p.Category.ParentID,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
