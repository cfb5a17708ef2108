package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CategoryRefKind identifica la forma en que un producto referencia su categoría.
type CategoryRefKind int

const (
	// CategoryRefNone sin datos de categoría utilizables.
	CategoryRefNone CategoryRefKind = iota
	// CategoryRefByName string plano con el nombre de la categoría.
	CategoryRefByName
	// CategoryRefByRef objeto poblado con id (y opcionalmente name y parentId).
	CategoryRefByRef
	// CategoryRefByPartial objeto con name pero sin id.
	CategoryRefByPartial
)

func (k CategoryRefKind) String() string {
	switch k {
	case CategoryRefByName:
		return "by_name"
	case CategoryRefByRef:
		return "by_ref"
	case CategoryRefByPartial:
		return "by_partial"
	default:
		return "none"
	}
}

// CategoryRef es la referencia de categoría de un producto, normalizada una sola vez al ingresar
// desde cualquiera de las formas históricas del catálogo.
type CategoryRef struct {
	Kind     CategoryRefKind
	ID       string
	Name     string
	ParentID string
}

// CategoryByName construye una referencia por nombre.
func CategoryByName(name string) CategoryRef {
	if name == "" {
		return CategoryRef{}
	}
	return CategoryRef{Kind: CategoryRefByName, Name: name}
}

// CategoryByRef construye una referencia poblada.
func CategoryByRef(id, name, parentID string) CategoryRef {
	if id == "" {
		return CategoryByPartial(name)
	}
	return CategoryRef{Kind: CategoryRefByRef, ID: id, Name: name, ParentID: parentID}
}

// CategoryByPartial construye una referencia parcial (solo nombre).
func CategoryByPartial(name string) CategoryRef {
	if name == "" {
		return CategoryRef{}
	}
	return CategoryRef{Kind: CategoryRefByPartial, Name: name}
}

// rawCategoryObject cubre los nombres de campo vistos en los documentos del catálogo.
type rawCategoryObject struct {
	ID        json.RawMessage `json:"id"`
	MongoID   json.RawMessage `json:"_id"`
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	ParentID  json.RawMessage `json:"parentId"`
	Parent    json.RawMessage `json:"parent"`
	ParentSQL json.RawMessage `json:"parent_id"`
}

// ParseCategoryRef convierte el JSON heterogéneo de product.category en una CategoryRef.
// Nunca falla: cualquier forma no reconocida produce CategoryRefNone.
func ParseCategoryRef(raw []byte) CategoryRef {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return CategoryRef{}
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return CategoryRef{}
		}
		return CategoryByName(strings.TrimSpace(s))
	case '{':
		var obj rawCategoryObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			return CategoryRef{}
		}
		name := obj.Name
		if name == "" {
			name = obj.Title
		}
		id := IDFromJSON(obj.ID)
		if id == "" {
			id = IDFromJSON(obj.MongoID)
		}
		parentID := IDFromJSON(obj.ParentID)
		if parentID == "" {
			parentID = IDFromJSON(obj.Parent)
		}
		if parentID == "" {
			parentID = IDFromJSON(obj.ParentSQL)
		}
		return CategoryByRef(id, name, parentID)
	default:
		return CategoryRef{}
	}
}

// IDFromJSON extrae un id escrito como string, número, {"$oid": "..."} o un objeto poblado con id.
func IDFromJSON(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '{':
		var obj struct {
			OID     string          `json:"$oid"`
			ID      json.RawMessage `json:"id"`
			MongoID json.RawMessage `json:"_id"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return ""
		}
		if obj.OID != "" {
			return obj.OID
		}
		if id := IDFromJSON(obj.ID); id != "" {
			return id
		}
		return IDFromJSON(obj.MongoID)
	case '[', 't', 'f':
		return ""
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	*r = ParseCategoryRef(data)
	return nil
}

// MarshalJSON serializa en la forma canónica de cada variante.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case CategoryRefByName:
		return json.Marshal(r.Name)
	case CategoryRefByRef:
		out := map[string]string{"id": r.ID, "name": r.Name}
		if r.ParentID != "" {
			out["parentId"] = r.ParentID
		}
		return json.Marshal(out)
	case CategoryRefByPartial:
		return json.Marshal(map[string]string{"name": r.Name})
	default:
		return []byte("null"), nil
	}
}
