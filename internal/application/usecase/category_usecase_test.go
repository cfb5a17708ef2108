package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallofcayman/catalog-api/internal/application/usecase"
	"github.com/mallofcayman/catalog-api/internal/domain"
	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

func newCategoryUC(cache *stubCache) *usecase.CategoryUseCase {
	cfg := usecase.CatalogConfig{Logger: zerolog.Nop()}
	if cache == nil {
		// Evita un *stubCache nil dentro de la interfaz.
		return usecase.NewCategoryUseCase(&stubCategoryRepo{cats: categories()}, nil, cfg)
	}
	return usecase.NewCategoryUseCase(&stubCategoryRepo{cats: categories()}, cache, cfg)
}

func TestCategoryList(t *testing.T) {
	out, err := newCategoryUC(nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 4)
	assert.Equal(t, "Electronics", out.Items[0].Name)
	assert.Equal(t, "1", out.Items[1].ParentID)
	assert.NotEmpty(t, out.Version)
}

func TestCategoryTree(t *testing.T) {
	out, err := newCategoryUC(nil).Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Roots, 2)

	electronics := out.Roots[0]
	assert.Equal(t, "Electronics", electronics.Name)
	require.Len(t, electronics.Children, 1)
	require.Len(t, electronics.Children[0].Children, 1)
	assert.Equal(t, "Smartphones", electronics.Children[0].Children[0].Name)
	assert.Empty(t, out.Roots[1].Children)
}

func TestCategoryResolve(t *testing.T) {
	out, err := newCategoryUC(nil).Resolve(context.Background(), "Phones")
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, []string{"2", "3"}, out.IDs)
}

func TestCategoryResolve_Desconocida(t *testing.T) {
	out, err := newCategoryUC(nil).Resolve(context.Background(), "Nonexistent")
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.NotNil(t, out.IDs)
	assert.Empty(t, out.IDs)
}

func TestCategoryBreadcrumb(t *testing.T) {
	uc := newCategoryUC(nil)

	out, err := uc.Breadcrumb(context.Background(), "3")
	require.NoError(t, err)
	require.NotNil(t, out)
	names := []string{}
	for _, c := range out.Items {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Electronics", "Phones", "Smartphones"}, names)

	missing, err := uc.Breadcrumb(context.Background(), "404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryInvalidateCache(t *testing.T) {
	cache := newStubCache()
	uc := newCategoryUC(cache)
	ctx := context.Background()

	_, err := uc.Resolve(ctx, "Phones")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	require.NoError(t, uc.InvalidateCache(ctx))
	assert.Equal(t, 1, cache.invalidated)

	_, err = uc.Resolve(ctx, "Phones")
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
}

func TestCategoryInvalidateCache_SinCache(t *testing.T) {
	assert.NoError(t, newCategoryUC(nil).InvalidateCache(context.Background()))
}

// Un cambio en el snapshot cambia la versión, así que la caché nunca devuelve una selección vieja.
func TestCategoryResolve_SnapshotNuevoIgnoraCache(t *testing.T) {
	cache := newStubCache()
	repo := &stubCategoryRepo{cats: categories()}
	uc := usecase.NewCategoryUseCase(repo, cache, usecase.CatalogConfig{Logger: zerolog.Nop()})
	ctx := context.Background()

	first, err := uc.Resolve(ctx, "Phones")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, first.IDs)

	repo.cats = append(categories(), &entity.Category{ID: "4", ParentID: "2", Name: "Feature phones"})
	second, err := uc.Resolve(ctx, "Phones")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4"}, second.IDs)
}

func TestCategoryList_ErrorDeFuente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&stubCategoryRepo{err: domain.ErrUpstream}, nil, usecase.CatalogConfig{Logger: zerolog.Nop()})
	_, err := uc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
