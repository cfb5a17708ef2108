package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mallofcayman/catalog-api/internal/application/usecase"
	"github.com/mallofcayman/catalog-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUseCase
	CategoryUC *usecase.CategoryUseCase
	Auth       AuthConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías (público)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/tree", categoryHandler.Tree)
	categories.Get("/resolve", categoryHandler.Resolve)
	categories.Get("/:id/breadcrumb", categoryHandler.Breadcrumb)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.GetByID)
	api.Get("/stores/:storeId/products", catalogHandler.StoreProducts)
	api.Get("/feeds/products.xml", catalogHandler.Feed)

	// Administración (requiere Bearer Token + rol)
	admin := api.Group("/admin", AuthMiddleware(deps.Auth))
	admin.Get("/products/export.pdf",
		RequireRole(jwt.RoleAdmin, jwt.RoleStoreManager),
		ScopeToStore(),
		catalogHandler.ExportPDF,
	)
	admin.Post("/catalog/cache/invalidate",
		RequireRole(jwt.RoleAdmin),
		categoryHandler.InvalidateCache,
	)
}
