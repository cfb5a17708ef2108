package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/mallofcayman/catalog-api/internal/application/dto"
	"github.com/mallofcayman/catalog-api/internal/domain"
)

// writeError traduce errores de dominio a HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUpstream):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "fuente de catálogo no disponible"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseProductQuery lee category, q, min_price, max_price, sort, limit y offset.
// Un precio no decimal devuelve error (400 INVALID_QUERY en el handler).
func parseProductQuery(c *fiber.Ctx) (dto.ProductQuery, error) {
	q := dto.ProductQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   c.Query("q"),
		Sort:     c.Query("sort"),
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", 20),
			Offset: c.QueryInt("offset", 0),
		},
	}
	var err error
	if q.MinPrice, err = parseDecimalParam(c, "min_price"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = parseDecimalParam(c, "max_price"); err != nil {
		return q, err
	}
	return q, nil
}

func parseDecimalParam(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.New(key + " debe ser un número decimal")
	}
	return &d, nil
}

func invalidQuery(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
}
