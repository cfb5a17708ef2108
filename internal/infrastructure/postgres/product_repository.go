package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
	"github.com/mallofcayman/catalog-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// category es JSONB: se guarda tal como lo envió la tienda (string, objeto o null).
const productColumns = `id, store_id, name, description, price, rating, category, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListAll devuelve todos los productos publicados en orden de creación.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	return r.list(ctx, "list products", query)
}

// ListByStore devuelve los productos de una tienda.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 ORDER BY created_at, id`
	return r.list(ctx, "list products by store", query, storeID)
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p             entity.Product
		storeID, desc *string
		rating        decimal.NullDecimal
		rawCategory   []byte
	)
	err := row.Scan(&p.ID, &storeID, &p.Name, &desc, &p.Price, &rating, &rawCategory, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.StoreID = deref(storeID)
	p.Description = deref(desc)
	if rating.Valid {
		p.Rating = rating.Decimal
	}
	// Nunca falla: formas desconocidas quedan como CategoryRefNone.
	p.Category = entity.ParseCategoryRef(rawCategory)
	return &p, nil
}
