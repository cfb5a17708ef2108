package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mallofcayman/catalog-api/internal/domain/catalog"
	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

func shopProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "Galaxy S24", Description: "Smartphone Android", Price: price("899.99"), Rating: price("4.5"), Category: entity.CategoryByRef("3", "Smartphones", "2")},
		{ID: "2", Name: "iPhone 15", Description: "Apple smartphone", Price: price("999"), Rating: price("4.8"), Category: entity.CategoryByName("Smartphones")},
		{ID: "3", Name: "Office Chair", Description: "Ergonomic", Price: price("150"), Rating: price("4.1"), Category: entity.CategoryByName("Furniture")},
		{ID: "4", Name: "USB Cable", Description: "Accessory for PHONES", Price: price("9.5"), Rating: price("3.9"), Category: entity.CategoryByRef("2", "Phones", "1")},
	}
}

func TestSearchProducts_SinDistinguirMayusculas(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "4"}, ids(catalog.SearchProducts(shopProducts(), "PHONE")))
	assert.Equal(t, []string{"3"}, ids(catalog.SearchProducts(shopProducts(), "ergo")))
	assert.Len(t, catalog.SearchProducts(shopProducts(), "   "), 4)
	assert.Empty(t, catalog.SearchProducts(shopProducts(), "tablet"))
}

func TestFilterByPrice_CotasInclusivas(t *testing.T) {
	lo, hi := price("150"), price("899.99")
	assert.Equal(t, []string{"1", "3"}, ids(catalog.FilterByPrice(shopProducts(), &lo, &hi)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(catalog.FilterByPrice(shopProducts(), &lo, nil)))
	assert.Equal(t, []string{"3", "4"}, ids(catalog.FilterByPrice(shopProducts(), nil, &lo)))
	assert.Len(t, catalog.FilterByPrice(shopProducts(), nil, nil), 4)
}

func TestSortProducts(t *testing.T) {
	cases := map[catalog.SortKey][]string{
		catalog.SortPriceAsc:  {"4", "3", "1", "2"},
		catalog.SortPriceDesc: {"2", "1", "3", "4"},
		catalog.SortName:      {"1", "2", "3", "4"},
		catalog.SortRating:    {"2", "1", "3", "4"},
		catalog.SortNone:      {"1", "2", "3", "4"},
	}
	for key, want := range cases {
		list := shopProducts()
		catalog.SortProducts(list, key)
		assert.Equal(t, want, ids(list), "orden %q", key)
	}
}

func TestSortProducts_Estable(t *testing.T) {
	list := []*entity.Product{
		{ID: "a", Price: price("10")},
		{ID: "b", Price: price("5")},
		{ID: "c", Price: price("10")},
	}
	catalog.SortProducts(list, catalog.SortPriceAsc)
	assert.Equal(t, []string{"b", "a", "c"}, ids(list))
}

func TestParseSortKey(t *testing.T) {
	k, ok := catalog.ParseSortKey(" Price_Desc ")
	assert.True(t, ok)
	assert.Equal(t, catalog.SortPriceDesc, k)

	k, ok = catalog.ParseSortKey("")
	assert.True(t, ok)
	assert.Equal(t, catalog.SortNone, k)

	_, ok = catalog.ParseSortKey("popularity")
	assert.False(t, ok)
}

func TestApplyFilters_Pipeline(t *testing.T) {
	idx := catalog.NewCategoryIndex(electronicsCategories())
	maxPrice := decimal.NewFromInt(950)

	out := catalog.ApplyFilters(shopProducts(), idx, catalog.FilterQuery{
		Category: "Phones",
		Search:   "phone",
		MaxPrice: &maxPrice,
		Sort:     catalog.SortPriceAsc,
	})
	assert.Equal(t, []string{"4", "1"}, ids(out))
}

func TestApplyFilters_NoModificaLaEntrada(t *testing.T) {
	idx := catalog.NewCategoryIndex(electronicsCategories())
	in := shopProducts()

	catalog.ApplyFilters(in, idx, catalog.FilterQuery{Sort: catalog.SortPriceDesc})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(in))
}

func TestPaginate(t *testing.T) {
	list := shopProducts()

	page, total := catalog.Paginate(list, 2, 0)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"1", "2"}, ids(page))

	page, _ = catalog.Paginate(list, 2, 3)
	assert.Equal(t, []string{"4"}, ids(page))

	page, total = catalog.Paginate(list, 2, 10)
	assert.Equal(t, 4, total)
	assert.Empty(t, page)

	page, _ = catalog.Paginate(list, 0, 1)
	assert.Len(t, page, 3)
}

// Las entradas nil se descartan antes de buscar, filtrar por precio y ordenar.
func TestApplyFilters_IgnoraProductosNil(t *testing.T) {
	idx := catalog.NewCategoryIndex(electronicsCategories())
	in := append([]*entity.Product{nil}, shopProducts()...)
	in = append(in, nil)
	minPrice := decimal.NewFromInt(100)

	out := catalog.ApplyFilters(in, idx, catalog.FilterQuery{
		Search:   "e",
		MinPrice: &minPrice,
		Sort:     catalog.SortName,
	})
	assert.Equal(t, []string{"1", "2", "3"}, ids(out))

	assert.Equal(t, []string{"1", "2", "4"}, ids(catalog.SearchProducts(in, "phone")))
	assert.Len(t, catalog.FilterByPrice(in, &minPrice, nil), 3)
}
