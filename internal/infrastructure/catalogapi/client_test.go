package catalogapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallofcayman/catalog-api/internal/domain"
	"github.com/mallofcayman/catalog-api/internal/domain/entity"
	"github.com/mallofcayman/catalog-api/internal/infrastructure/catalogapi"
)

func newServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if body == "500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server) *catalogapi.Client {
	return catalogapi.NewClient(catalogapi.ClientOpts{BaseURL: srv.URL, Token: "tok"})
}

func TestCategoryRepo_ListAll_FormasHeterogeneas(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/categories": `[
			{"_id": {"$oid": "1"}, "name": "Electronics", "parent": null},
			{"_id": "2", "name": "Phones", "parent": {"_id": "1", "name": "Electronics"}},
			{"id": 3, "title": "Smartphones", "parentId": "2"},
			{"id": "9", "name": "Furniture", "parent_id": null, "createdAt": "2026-01-02T03:04:05Z"}
		]`,
	})
	repo := catalogapi.NewCategoryRepository(newClient(srv))

	cats, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 4)

	assert.Equal(t, "1", cats[0].ID)
	assert.True(t, cats[0].IsRoot())
	assert.Equal(t, "1", cats[1].ParentID)
	assert.Equal(t, "3", cats[2].ID)
	assert.Equal(t, "Smartphones", cats[2].DisplayName())
	assert.Equal(t, "2", cats[2].ParentID)
	assert.Equal(t, 2026, cats[3].CreatedAt.Year())
}

func TestCategoryRepo_ListAll_Sobre(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/categories": `{"data": [{"id": "1", "name": "Electronics"}]}`,
	})
	cats, err := catalogapi.NewCategoryRepository(newClient(srv)).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Electronics", cats[0].Name)
}

func TestProductRepo_ListAll(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/products": `{"items": [
			{"_id": "pA", "name": "Phone A", "price": 199.99, "category": "Smartphones", "store": {"_id": "s1"}},
			{"_id": "pB", "name": "Phone B", "price": "249.50", "rating": {"$numberDecimal": "4.5"}, "category": {"_id": "3", "name": "Smartphones", "parent": "2"}},
			{"_id": "pC", "name": "Case", "price": null, "category": {"name": "Phones"}},
			{"_id": "pD", "name": "Chair", "price": 80, "category": 42}
		]}`,
	})
	products, err := catalogapi.NewProductRepository(newClient(srv)).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	assert.Equal(t, entity.CategoryRefByName, products[0].Category.Kind)
	assert.Equal(t, "s1", products[0].StoreID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("199.99")))

	assert.Equal(t, entity.CategoryRefByRef, products[1].Category.Kind)
	assert.Equal(t, "2", products[1].Category.ParentID)
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("249.50")))
	assert.True(t, products[1].Rating.Equal(decimal.RequireFromString("4.5")))

	assert.Equal(t, entity.CategoryRefByPartial, products[2].Category.Kind)
	assert.True(t, products[2].Price.IsZero())

	assert.Equal(t, entity.CategoryRefNone, products[3].Category.Kind)
}

func TestProductRepo_ListByStore(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/stores/s1/products": `[{"id": "pA", "name": "Phone A", "storeId": "s1", "price": 10}]`,
	})
	products, err := catalogapi.NewProductRepository(newClient(srv)).ListByStore(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "s1", products[0].StoreID)
}

func TestProductRepo_GetByID(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/products/pA": `{"data": {"id": "pA", "name": "Phone A", "price": 10}}`,
	})
	repo := catalogapi.NewProductRepository(newClient(srv))

	p, err := repo.GetByID(context.Background(), "pA")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Phone A", p.Name)

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClient_ErrorUpstream(t *testing.T) {
	srv := newServer(t, map[string]string{"/categories": "500"})
	_, err := catalogapi.NewCategoryRepository(newClient(srv)).ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_TokenInvalido(t *testing.T) {
	srv := newServer(t, map[string]string{"/categories": `[]`})
	client := catalogapi.NewClient(catalogapi.ClientOpts{BaseURL: srv.URL, Token: "otro"})

	_, err := catalogapi.NewCategoryRepository(client).ListAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_RespuestaNoLista(t *testing.T) {
	srv := newServer(t, map[string]string{"/products": `"oops"`})
	_, err := catalogapi.NewProductRepository(newClient(srv)).ListAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
