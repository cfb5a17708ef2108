package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mallofcayman/catalog-api/internal/application/dto"
	"github.com/mallofcayman/catalog-api/pkg/jwt"
)

// LocalScopeStoreID tienda a la que queda restringida la petición ("" = sin restricción).
const LocalScopeStoreID = "scope_store_id"

// ScopeToStore limita a un gestor de tienda a los productos de su propia tienda.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - store_manager con store_id en el token → la petición queda acotada a esa tienda.
//   - store_manager sin store_id → 403 MISSING_STORE.
//   - Cualquier otro rol pasa sin restricción (RequireRole decide quién entra).
func ScopeToStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != jwt.RoleStoreManager {
			return c.Next()
		}
		storeID := GetStoreID(c)
		if storeID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MISSING_STORE",
				Message: "el token de gestor no incluye store_id",
			})
		}
		c.Locals(LocalScopeStoreID, storeID)
		return c.Next()
	}
}

// GetScopeStoreID devuelve la tienda impuesta por ScopeToStore.
func GetScopeStoreID(c *fiber.Ctx) string {
	return localString(c, LocalScopeStoreID)
}
