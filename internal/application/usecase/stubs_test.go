package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	cats []*entity.Category
	err  error
}

func (s *stubCategoryRepo) ListAll(context.Context) ([]*entity.Category, error) {
	return s.cats, s.err
}

func (s *stubCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	for _, c := range s.cats {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, s.err
}

type stubProductRepo struct {
	products []*entity.Product
	err      error
}

func (s *stubProductRepo) ListAll(context.Context) ([]*entity.Product, error) {
	return s.products, s.err
}

func (s *stubProductRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, s.err
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// stubCache cuenta lecturas/escrituras y puede fallar a propósito.
type stubCache struct {
	mu          sync.Mutex
	data        map[string][]string
	gets, sets  int
	invalidated int
	failGet     bool
	failSet     bool
}

func newStubCache() *stubCache { return &stubCache{data: map[string][]string{}} }

func (c *stubCache) Get(_ context.Context, version, name string) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return nil, false, errors.New("cache caída")
	}
	ids, ok := c.data[version+"|"+name]
	return ids, ok, nil
}

func (c *stubCache) Set(_ context.Context, version, name string, ids []string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.failSet {
		return errors.New("cache caída")
	}
	c.data[version+"|"+name] = ids
	return nil
}

func (c *stubCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	c.data = map[string][]string{}
	return nil
}


// ── Fixtures ──────────────────────────────────────────────────────────────────

func categories() []*entity.Category {
	return []*entity.Category{
		{ID: "1", Name: "Electronics"},
		{ID: "2", ParentID: "1", Name: "Phones"},
		{ID: "3", ParentID: "2", Name: "Smartphones"},
		{ID: "9", Name: "Furniture"},
	}
}

func products() []*entity.Product {
	return []*entity.Product{
		{ID: "pA", StoreID: "s1", Name: "Phone A", Description: "Pantalla OLED", Price: decimal.NewFromInt(100), Rating: decimal.RequireFromString("4.1"), Category: entity.CategoryByName("Smartphones")},
		{ID: "pB", StoreID: "s2", Name: "Phone B", Price: decimal.NewFromInt(300), Rating: decimal.RequireFromString("4.8"), Category: entity.CategoryByRef("3", "", "")},
		{ID: "pC", StoreID: "s1", Name: "Case", Price: decimal.NewFromInt(20), Rating: decimal.RequireFromString("3.0"), Category: entity.CategoryByPartial("Phones")},
		{ID: "pD", StoreID: "s2", Name: "Chair", Price: decimal.NewFromInt(80), Rating: decimal.RequireFromString("4.0"), Category: entity.CategoryByName("Furniture")},
	}
}


func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
