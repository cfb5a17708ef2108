package catalog

import "github.com/mallofcayman/catalog-api/internal/domain/entity"

// MatchesCategory decide si una referencia de categoría pertenece a la selección.
// Una selección vacía (nombre sin registro de categoría) no admite ninguna referencia.
// Reglas (la primera que aplica gana):
//   - ByName: nombre igual al seleccionado, o el nombre resuelve a un ID de la selección.
//   - ByRef: ID en la selección, o nombre igual al seleccionado, o ParentID en la selección.
//   - ByPartial: nombre igual al seleccionado.
//   - None: nunca coincide.
func MatchesCategory(ref entity.CategoryRef, sel Selection, selectedName string, idx *CategoryIndex) bool {
	if sel.Empty() {
		return false
	}
	switch ref.Kind {
	case entity.CategoryRefByName:
		if ref.Name == selectedName {
			return true
		}
		if idx == nil {
			return false
		}
		c, ok := idx.Lookup(ref.Name)
		return ok && sel.Has(c.ID)
	case entity.CategoryRefByRef:
		if sel.Has(ref.ID) {
			return true
		}
		if ref.Name != "" && ref.Name == selectedName {
			return true
		}
		return sel.Has(ref.ParentID)
	case entity.CategoryRefByPartial:
		return ref.Name == selectedName
	default:
		return false
	}
}

// FilterProducts devuelve la subsecuencia de productos que pertenecen a la selección,
// conservando el orden. Con selectedName vacío ("Todas las categorías") devuelve todos;
// un nombre que no resuelve a ninguna categoría devuelve una lista vacía.
// Las entradas nil se descartan siempre.
func FilterProducts(products []*entity.Product, sel Selection, selectedName string, idx *CategoryIndex) []*entity.Product {
	if selectedName != "" && sel.Empty() {
		return []*entity.Product{}
	}
	out := make([]*entity.Product, 0, len(products))
	if selectedName == "" {
		for _, p := range products {
			if p != nil {
				out = append(out, p)
			}
		}
		return out
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		if MatchesCategory(p.Category, sel, selectedName, idx) {
			out = append(out, p)
		}
	}
	return out
}
