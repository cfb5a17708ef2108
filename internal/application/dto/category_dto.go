package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name"`
}

// CategoryListResponse lista plana de categorías.
type CategoryListResponse struct {
	Items   []CategoryResponse `json:"items"`
	Version string             `json:"version"`
}

// CategoryTreeNode nodo del árbol anidado.
type CategoryTreeNode struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Children []CategoryTreeNode `json:"children"`
}

// CategoryTreeResponse árbol completo de categorías.
type CategoryTreeResponse struct {
	Roots   []CategoryTreeNode `json:"roots"`
	Version string             `json:"version"`
}

// ResolvedSelectionResponse IDs que cuentan como la categoría pedida (ella más sus descendientes).
type ResolvedSelectionResponse struct {
	Name  string   `json:"name"`
	IDs   []string `json:"ids"`
	Found bool     `json:"found"`
}

// BreadcrumbResponse ruta desde la raíz hasta la categoría.
type BreadcrumbResponse struct {
	Items []CategoryResponse `json:"items"`
}
