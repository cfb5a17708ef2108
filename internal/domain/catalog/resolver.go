// Package catalog contiene la lógica pura de filtrado del catálogo: resolución de categorías
// con todos sus descendientes, coincidencia de productos por categoría y refinamientos
// (búsqueda, rango de precio, orden, paginación). No hace I/O.
package catalog

import (
	"sort"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// Selection es el conjunto de IDs de la categoría seleccionada más todos sus descendientes.
type Selection map[string]struct{}

// Has indica si el ID pertenece a la selección.
func (s Selection) Has(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s[id]
	return ok
}

// Len cantidad de IDs.
func (s Selection) Len() int { return len(s) }

// Empty indica si la selección no contiene IDs.
func (s Selection) Empty() bool { return len(s) == 0 }

// IDs devuelve los IDs ordenados.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SelectionFromIDs reconstruye una selección (p. ej. desde caché).
func SelectionFromIDs(ids []string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// CycleObserver recibe el ID de una categoría encontrada dos veces al expandir descendientes.
type CycleObserver func(categoryID string)

// IndexOption configura un CategoryIndex.
type IndexOption func(*CategoryIndex)

// WithCycleObserver registra un observador de ciclos (datos corruptos en el árbol).
func WithCycleObserver(fn CycleObserver) IndexOption {
	return func(idx *CategoryIndex) { idx.onCycle = fn }
}

// CategoryIndex índice construido una sola vez sobre un snapshot de categorías.
type CategoryIndex struct {
	byID     map[string]*entity.Category
	byName   map[string]*entity.Category
	children map[string][]string
	order    []*entity.Category
	onCycle  CycleObserver
}

// NewCategoryIndex indexa el snapshot. Ante nombres repetidos gana el primer registro;
// Name tiene prioridad sobre Title. Categorías sin nombre se indexan solo por ID.
func NewCategoryIndex(categories []*entity.Category, opts ...IndexOption) *CategoryIndex {
	idx := &CategoryIndex{
		byID:     make(map[string]*entity.Category, len(categories)),
		byName:   make(map[string]*entity.Category, len(categories)),
		children: make(map[string][]string),
		order:    make([]*entity.Category, 0, len(categories)),
	}
	for _, opt := range opts {
		opt(idx)
	}

	for _, c := range categories {
		if c == nil || c.ID == "" {
			continue
		}
		if _, dup := idx.byID[c.ID]; dup {
			continue
		}
		idx.byID[c.ID] = c
		idx.order = append(idx.order, c)
		if c.ParentID != "" {
			idx.children[c.ParentID] = append(idx.children[c.ParentID], c.ID)
		}
	}
	// Dos pasadas para que un Name siempre gane sobre un Title igual.
	for _, c := range idx.order {
		if c.Name != "" {
			if _, taken := idx.byName[c.Name]; !taken {
				idx.byName[c.Name] = c
			}
		}
	}
	for _, c := range idx.order {
		if c.Title != "" {
			if _, taken := idx.byName[c.Title]; !taken {
				idx.byName[c.Title] = c
			}
		}
	}
	return idx
}

// Len cantidad de categorías indexadas.
func (idx *CategoryIndex) Len() int { return len(idx.order) }

// Categories devuelve las categorías en el orden del snapshot.
func (idx *CategoryIndex) Categories() []*entity.Category { return idx.order }

// Lookup busca una categoría por nombre (o título).
func (idx *CategoryIndex) Lookup(name string) (*entity.Category, bool) {
	if name == "" {
		return nil, false
	}
	c, ok := idx.byName[name]
	return c, ok
}

// Get busca una categoría por ID.
func (idx *CategoryIndex) Get(id string) (*entity.Category, bool) {
	c, ok := idx.byID[id]
	return c, ok
}

// Children devuelve los IDs hijos directos en el orden del snapshot.
func (idx *CategoryIndex) Children(id string) []string {
	return idx.children[id]
}

// Resolve devuelve la selección de la categoría con ese nombre y todos sus descendientes.
// Si no hay coincidencia devuelve una selección vacía (no es un error).
func (idx *CategoryIndex) Resolve(selectedName string) Selection {
	c, ok := idx.Lookup(selectedName)
	if !ok {
		return Selection{}
	}
	return idx.expand(c.ID)
}

// ResolveByID igual que Resolve pero partiendo de un ID.
func (idx *CategoryIndex) ResolveByID(id string) Selection {
	if _, ok := idx.byID[id]; !ok {
		return Selection{}
	}
	return idx.expand(id)
}

// expand recorre los descendientes con una worklist (BFS). El conjunto visitado corta los ciclos.
func (idx *CategoryIndex) expand(rootID string) Selection {
	sel := Selection{rootID: {}}
	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, childID := range idx.children[current] {
			if _, seen := sel[childID]; seen {
				if idx.onCycle != nil {
					idx.onCycle(childID)
				}
				continue
			}
			sel[childID] = struct{}{}
			queue = append(queue, childID)
		}
	}
	return sel
}

// Ancestors devuelve la ruta desde la raíz hasta la categoría (inclusive).
// Un ciclo en la cadena de padres corta la ruta en el primer ID repetido.
func (idx *CategoryIndex) Ancestors(id string) []*entity.Category {
	c, ok := idx.byID[id]
	if !ok {
		return nil
	}
	seen := map[string]struct{}{}
	var path []*entity.Category
	for c != nil {
		if _, loop := seen[c.ID]; loop {
			if idx.onCycle != nil {
				idx.onCycle(c.ID)
			}
			break
		}
		seen[c.ID] = struct{}{}
		path = append(path, c)
		if c.ParentID == "" {
			break
		}
		c = idx.byID[c.ParentID]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ResolveCategoryTree atajo: indexa el snapshot y resuelve el nombre.
func ResolveCategoryTree(categories []*entity.Category, selectedName string) Selection {
	return NewCategoryIndex(categories).Resolve(selectedName)
}
