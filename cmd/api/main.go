package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mallofcayman/catalog-api/internal/application/ports"
	"github.com/mallofcayman/catalog-api/internal/application/usecase"
	"github.com/mallofcayman/catalog-api/internal/domain/repository"
	infracache "github.com/mallofcayman/catalog-api/internal/infrastructure/cache"
	"github.com/mallofcayman/catalog-api/internal/infrastructure/catalogapi"
	infrafeed "github.com/mallofcayman/catalog-api/internal/infrastructure/feed"
	infrapdf "github.com/mallofcayman/catalog-api/internal/infrastructure/pdf"
	"github.com/mallofcayman/catalog-api/internal/infrastructure/postgres"
	httpRouter "github.com/mallofcayman/catalog-api/internal/interfaces/http"
	"github.com/mallofcayman/catalog-api/pkg/config"
	"github.com/mallofcayman/catalog-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog_source", cfg.Catalog.Source).
		Str("cache_driver", cfg.Cache.Driver).
		Msg("iniciando aplicación")
	log.Debug().
		Str("catalog_api_url", cfg.Catalog.APIURL).
		Dur("catalog_timeout", cfg.Catalog.Timeout()).
		Dur("cache_ttl", cfg.Cache.TTL()).
		Str("redis_addr", cfg.Redis.Addr).
		Int("db_max_conns", cfg.DB.MaxConns).
		Str("feed_base_url", cfg.Feed.BaseURL).
		Msg("configuración cargada")

	ctx := context.Background()

	// Fuente del catálogo: PostgreSQL propio o API REST del backend del marketplace.
	var (
		categoryRepo repository.CategoryRepository
		productRepo  repository.ProductRepository
	)
	switch cfg.Catalog.Source {
	case config.SourceRemote:
		client := catalogapi.NewClient(catalogapi.ClientOpts{
			BaseURL: cfg.Catalog.APIURL,
			Token:   cfg.Catalog.APIToken,
			Timeout: cfg.Catalog.Timeout(),
		})
		categoryRepo = catalogapi.NewCategoryRepository(client)
		productRepo = catalogapi.NewProductRepository(client)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		categoryRepo = postgres.NewCategoryRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	}

	// Caché de selecciones resueltas.
	var selectionCache ports.SelectionCache
	switch cfg.Cache.Driver {
	case config.CacheRedis:
		rdb, err := infracache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		selectionCache = infracache.NewRedisSelectionCache(rdb)
	case config.CacheMemory:
		selectionCache = infracache.NewMemorySelectionCache()
	}

	ucCfg := usecase.CatalogConfig{
		CacheTTL: cfg.Cache.TTL(),
		Logger:   log.Component("catalog"),
	}
	categoryCfg := ucCfg
	categoryCfg.Logger = log.Component("categories")
	catalogUC := usecase.NewCatalogUseCase(
		categoryRepo, productRepo, selectionCache,
		infrapdf.NewMarotoCatalogGenerator(cfg.App.Name),
		infrafeed.NewRSSFeedBuilder(cfg.Feed.BaseURL, cfg.Feed.Currency),
		ucCfg,
	)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, selectionCache, categoryCfg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // exportación PDF de catálogos grandes
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mall of Cayman Catalog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		CategoryUC: categoryUC,
		Auth: httpRouter.AuthConfig{
			Secret: cfg.JWT.Secret,
			Issuer: cfg.JWT.Issuer,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
