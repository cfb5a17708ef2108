package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mallofcayman/catalog-api/internal/application/ports"
	"github.com/mallofcayman/catalog-api/internal/domain/catalog"
	"github.com/mallofcayman/catalog-api/internal/domain/repository"
)

// CatalogConfig opciones comunes de los casos de uso del catálogo.
type CatalogConfig struct {
	CacheTTL time.Duration // TTL de selecciones resueltas en caché (0 = sin expiración)
	Logger   zerolog.Logger
}

// categorySnapshot índice de categorías y su versión, válido para una sola petición.
type categorySnapshot struct {
	index   *catalog.CategoryIndex
	version string
}

// snapshotLoader lee el snapshot de categorías y resuelve selecciones pasando por la caché.
type snapshotLoader struct {
	categories repository.CategoryRepository
	cache      ports.SelectionCache // puede ser nil
	ttl        time.Duration
	log        zerolog.Logger
}

func newSnapshotLoader(categories repository.CategoryRepository, cache ports.SelectionCache, cfg CatalogConfig) *snapshotLoader {
	return &snapshotLoader{
		categories: categories,
		cache:      cache,
		ttl:        cfg.CacheTTL,
		log:        cfg.Logger,
	}
}

func (l *snapshotLoader) load(ctx context.Context) (*categorySnapshot, error) {
	cats, err := l.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo: cargar categorías: %w", err)
	}
	idx := catalog.NewCategoryIndex(cats, catalog.WithCycleObserver(func(id string) {
		l.log.Warn().Str("category_id", id).Msg("ciclo en el árbol de categorías, se corta la expansión")
	}))
	return &categorySnapshot{index: idx, version: catalog.SnapshotVersion(cats)}, nil
}

// resolve devuelve la selección de name. Un fallo de la caché nunca falla la petición.
func (l *snapshotLoader) resolve(ctx context.Context, snap *categorySnapshot, name string) catalog.Selection {
	if name == "" {
		return nil
	}
	if l.cache != nil {
		ids, ok, err := l.cache.Get(ctx, snap.version, name)
		if err != nil {
			l.log.Warn().Err(err).Str("category", name).Msg("caché de selecciones: lectura")
		} else if ok {
			return catalog.SelectionFromIDs(ids)
		}
	}

	sel := snap.index.Resolve(name)

	if l.cache != nil {
		if err := l.cache.Set(ctx, snap.version, name, sel.IDs(), l.ttl); err != nil {
			l.log.Warn().Err(err).Str("category", name).Msg("caché de selecciones: escritura")
		}
	}
	return sel
}

func (l *snapshotLoader) invalidate(ctx context.Context) error {
	if l.cache == nil {
		return nil
	}
	if err := l.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("catálogo: invalidar caché: %w", err)
	}
	return nil
}
