package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// CategoryNode nodo del árbol de categorías para la vista anidada.
type CategoryNode struct {
	Category *entity.Category
	Children []*CategoryNode
}

// BuildTree arma el árbol anidado en el orden del snapshot. Una categoría cuyo padre no existe
// se trata como raíz; los miembros de un ciclo no alcanzables desde ninguna raíz quedan fuera.
func (idx *CategoryIndex) BuildTree() []*CategoryNode {
	var roots []*CategoryNode
	for _, c := range idx.order {
		if c.ParentID != "" {
			if _, ok := idx.byID[c.ParentID]; ok {
				continue
			}
		}
		roots = append(roots, idx.buildNode(c, map[string]struct{}{}))
	}
	return roots
}

func (idx *CategoryIndex) buildNode(c *entity.Category, seen map[string]struct{}) *CategoryNode {
	seen[c.ID] = struct{}{}
	node := &CategoryNode{Category: c, Children: []*CategoryNode{}}
	for _, childID := range idx.children[c.ID] {
		if _, loop := seen[childID]; loop {
			continue
		}
		node.Children = append(node.Children, idx.buildNode(idx.byID[childID], seen))
	}
	return node
}

// BuildTree atajo sobre un snapshot.
func BuildTree(categories []*entity.Category) []*CategoryNode {
	return NewCategoryIndex(categories).BuildTree()
}

// SnapshotVersion huella del snapshot de categorías. Depende del orden porque ante nombres
// repetidos gana el primer registro; cambia cuando cambia cualquier ID, padre, nombre o título.
func SnapshotVersion(categories []*entity.Category) string {
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		lines = append(lines, strings.Join([]string{c.ID, c.ParentID, c.Name, c.Title}, "\x1f"))
	}
	sum := sha256.Sum256([]byte(strings.Join(lines, "\x1e")))
	return hex.EncodeToString(sum[:])
}
