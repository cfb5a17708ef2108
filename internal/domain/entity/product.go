package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por una tienda del marketplace.
// Category conserva la referencia de categoría tal como fue capturada (ver CategoryRef).
type Product struct {
	ID          string
	StoreID     string
	Name        string
	Description string
	Price       decimal.Decimal
	Rating      decimal.Decimal // promedio 0..5
	Category    CategoryRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
