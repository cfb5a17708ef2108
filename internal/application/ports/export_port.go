package ports

import (
	"context"
	"time"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// CatalogExport datos de un listado filtrado listos para exportar.
type CatalogExport struct {
	Title       string
	Category    string
	GeneratedAt time.Time
	Products    []*entity.Product
	// CategoryNames nombre legible por ID de categoría, para productos referenciados por ID.
	CategoryNames map[string]string
}

// CatalogPDFGenerator genera el PDF del catálogo filtrado (panel de administración).
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, export CatalogExport) ([]byte, error)
}

// ProductFeedBuilder genera el feed XML de productos para comparadores y marketplaces externos.
type ProductFeedBuilder interface {
	BuildProductFeed(ctx context.Context, export CatalogExport) ([]byte, error)
}

// CategoryLabel nombre de categoría a mostrar para un producto; "" si no tiene.
func (e CatalogExport) CategoryLabel(p *entity.Product) string {
	ref := p.Category
	if ref.Name != "" {
		return ref.Name
	}
	if ref.Kind == entity.CategoryRefByRef {
		return e.CategoryNames[ref.ID]
	}
	return ""
}
