package entity

import "time"

// Category representa una categoría del catálogo (árbol de profundidad arbitraria vía ParentID).
type Category struct {
	ID        string
	ParentID  string // vacío si es raíz
	Name      string
	Title     string // sinónimo de Name en registros antiguos
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}

// DisplayName devuelve Name o, si está vacío, Title.
func (c *Category) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Title
}
