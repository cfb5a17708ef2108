package catalogapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

type categoryDoc struct {
	ID        json.RawMessage `json:"id"`
	MongoID   json.RawMessage `json:"_id"`
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	ParentID  json.RawMessage `json:"parentId"`
	Parent    json.RawMessage `json:"parent"`
	ParentSQL json.RawMessage `json:"parent_id"`
	CreatedAt json.RawMessage `json:"createdAt"`
	UpdatedAt json.RawMessage `json:"updatedAt"`
}

func (d categoryDoc) toEntity() *entity.Category {
	return &entity.Category{
		ID:        firstID(d.ID, d.MongoID),
		ParentID:  firstID(d.ParentID, d.Parent, d.ParentSQL),
		Name:      strings.TrimSpace(d.Name),
		Title:     strings.TrimSpace(d.Title),
		CreatedAt: timeFromJSON(d.CreatedAt),
		UpdatedAt: timeFromJSON(d.UpdatedAt),
	}
}

type productDoc struct {
	ID          json.RawMessage `json:"id"`
	MongoID     json.RawMessage `json:"_id"`
	StoreID     json.RawMessage `json:"storeId"`
	Store       json.RawMessage `json:"store"`
	StoreSQL    json.RawMessage `json:"store_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	Rating      json.RawMessage `json:"rating"`
	Category    json.RawMessage `json:"category"`
	CreatedAt   json.RawMessage `json:"createdAt"`
	UpdatedAt   json.RawMessage `json:"updatedAt"`
}

func (d productDoc) toEntity() *entity.Product {
	return &entity.Product{
		ID:          firstID(d.ID, d.MongoID),
		StoreID:     firstID(d.StoreID, d.Store, d.StoreSQL),
		Name:        d.Name,
		Description: d.Description,
		Price:       decimalFromJSON(d.Price),
		Rating:      decimalFromJSON(d.Rating),
		Category:    entity.ParseCategoryRef(d.Category),
		CreatedAt:   timeFromJSON(d.CreatedAt),
		UpdatedAt:   timeFromJSON(d.UpdatedAt),
	}
}

func firstID(candidates ...json.RawMessage) string {
	for _, raw := range candidates {
		if id := entity.IDFromJSON(raw); id != "" {
			return id
		}
	}
	return ""
}

// decimalFromJSON acepta número, string numérico o {"$numberDecimal": "..."}; cualquier otra cosa es cero.
func decimalFromJSON(raw json.RawMessage) decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Zero
		}
		return d
	case '{':
		var obj struct {
			Value string `json:"$numberDecimal"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(obj.Value)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		d, err := decimal.NewFromString(string(raw))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
}

// timeFromJSON acepta RFC 3339 o {"$date": "..."}; el resto queda en cero.
func timeFromJSON(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var obj struct {
			Date json.RawMessage `json:"$date"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return time.Time{}
		}
		raw = obj.Date
	}
	var t time.Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return time.Time{}
	}
	return t
}
