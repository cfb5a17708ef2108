package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// SortKey criterio de orden del listado.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
)

// ParseSortKey valida el criterio de orden. Vacío es válido (orden original).
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNone, SortPriceAsc, SortPriceDesc, SortName, SortRating:
		return k, true
	default:
		return SortNone, false
	}
}

// FilterQuery consulta inmutable del listado de productos.
type FilterQuery struct {
	Category string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     SortKey
}

// ApplyFilters resuelve la categoría sobre el índice y aplica categoría, búsqueda, precio y orden.
func ApplyFilters(products []*entity.Product, idx *CategoryIndex, q FilterQuery) []*entity.Product {
	var sel Selection
	if q.Category != "" && idx != nil {
		sel = idx.Resolve(q.Category)
	}
	return ApplyFiltersWithSelection(products, idx, sel, q)
}

// ApplyFiltersWithSelection igual que ApplyFilters con una selección ya resuelta (p. ej. cacheada).
func ApplyFiltersWithSelection(products []*entity.Product, idx *CategoryIndex, sel Selection, q FilterQuery) []*entity.Product {
	out := FilterProducts(products, sel, q.Category, idx)
	out = SearchProducts(out, q.Search)
	out = FilterByPrice(out, q.MinPrice, q.MaxPrice)
	SortProducts(out, q.Sort)
	return out
}

// fold normaliza para comparar sin distinguir mayúsculas. Un cases.Caser no se comparte entre goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

// SearchProducts filtra por subcadena (sin distinguir mayúsculas) en nombre o descripción.
func SearchProducts(products []*entity.Product, search string) []*entity.Product {
	term := fold(strings.TrimSpace(search))
	if term == "" {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		if strings.Contains(fold(p.Name), term) || strings.Contains(fold(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByPrice aplica cotas inclusivas; una cota nil no restringe.
func FilterByPrice(products []*entity.Product, minPrice, maxPrice *decimal.Decimal) []*entity.Product {
	if minPrice == nil && maxPrice == nil {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		if minPrice != nil && p.Price.LessThan(*minPrice) {
			continue
		}
		if maxPrice != nil && p.Price.GreaterThan(*maxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts ordena en sitio de forma estable. No admite entradas nil.
func SortProducts(products []*entity.Product, key SortKey) {
	var less func(a, b *entity.Product) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b *entity.Product) bool { return a.Price.LessThan(b.Price) }
	case SortPriceDesc:
		less = func(a, b *entity.Product) bool { return a.Price.GreaterThan(b.Price) }
	case SortName:
		less = func(a, b *entity.Product) bool { return fold(a.Name) < fold(b.Name) }
	case SortRating:
		less = func(a, b *entity.Product) bool { return a.Rating.GreaterThan(b.Rating) }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

// Paginate devuelve la página pedida y el total previo a paginar.
func Paginate(products []*entity.Product, limit, offset int) ([]*entity.Product, int) {
	total := len(products)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []*entity.Product{}, total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return products[offset:end], total
}
