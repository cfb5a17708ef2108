package catalog_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidos
// ──────────────────────────────────────────────────────────────────────────────

func cat(id, parentID, name string) *entity.Category {
	return &entity.Category{ID: id, ParentID: parentID, Name: name}
}

// electronicsCategories: Electronics(1) → Phones(2) → Smartphones(3), más Furniture(9) suelta.
func electronicsCategories() []*entity.Category {
	return []*entity.Category{
		cat("1", "", "Electronics"),
		cat("2", "1", "Phones"),
		cat("3", "2", "Smartphones"),
		cat("9", "", "Furniture"),
	}
}

// referenceCategories: solo Electronics(1) → Phones(2) → Smartphones(3); no existe Furniture.
func referenceCategories() []*entity.Category {
	return electronicsCategories()[:3]
}

func product(id string, ref entity.CategoryRef) *entity.Product {
	return &entity.Product{ID: id, Name: "Producto " + id, Category: ref}
}

// electronicsProducts: pA..pD del escenario de referencia.
func electronicsProducts() []*entity.Product {
	return []*entity.Product{
		product("pA", entity.CategoryByName("Electronics")),
		product("pB", entity.CategoryByRef("2", "Phones", "1")),
		product("pC", entity.CategoryByRef("3", "Smartphones", "2")),
		product("pD", entity.CategoryByName("Furniture")),
	}
}

// chain construye root → c1 → ... → cN y devuelve las categorías y el nombre de la hoja.
func chain(depth int) ([]*entity.Category, string) {
	cats := []*entity.Category{cat("root", "", "Root")}
	parent := "root"
	leaf := "Root"
	for i := 1; i <= depth; i++ {
		id := fmt.Sprintf("c%d", i)
		leaf = fmt.Sprintf("Nivel %d", i)
		cats = append(cats, cat(id, parent, leaf))
		parent = id
	}
	return cats, leaf
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
