package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mallofcayman/catalog-api/internal/application/dto"
	"github.com/mallofcayman/catalog-api/internal/application/usecase"
)

// CatalogHandler listado público del catálogo, storefronts y exportaciones.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos del catálogo
// @Description  Filtra por categoría (incluye todas las subcategorías), búsqueda, rango de precio y orden.
// @Tags         products
// @Produce      json
// @Param        category   query  string  false  "Nombre de la categoría"
// @Param        q          query  string  false  "Búsqueda en nombre y descripción"
// @Param        min_price  query  string  false  "Precio mínimo (inclusive)"
// @Param        max_price  query  string  false  "Precio máximo (inclusive)"
// @Param        sort       query  string  false  "price_asc | price_desc | name | rating"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	q, err := parseProductQuery(c)
	if err != nil {
		return invalidQuery(c, err)
	}
	out, err := h.uc.ListProducts(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StoreProducts godoc
// @Summary      Catálogo de una tienda
// @Tags         stores
// @Produce      json
// @Param        storeId    path   string  true   "ID de la tienda"
// @Param        category   query  string  false  "Nombre de la categoría"
// @Param        q          query  string  false  "Búsqueda"
// @Param        min_price  query  string  false  "Precio mínimo"
// @Param        max_price  query  string  false  "Precio máximo"
// @Param        sort       query  string  false  "Orden"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeId}/products [get]
func (h *CatalogHandler) StoreProducts(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "storeId es requerido"})
	}
	q, err := parseProductQuery(c)
	if err != nil {
		return invalidQuery(c, err)
	}
	q.StoreID = storeID
	out, err := h.uc.ListProducts(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetProduct(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Feed godoc
// @Summary      Feed XML de productos (RSS 2.0 + g:)
// @Tags         feeds
// @Produce      xml
// @Param        category   query  string  false  "Nombre de la categoría"
// @Param        q          query  string  false  "Búsqueda"
// @Param        sort       query  string  false  "Orden"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/feeds/products.xml [get]
func (h *CatalogHandler) Feed(c *fiber.Ctx) error {
	q, err := parseProductQuery(c)
	if err != nil {
		return invalidQuery(c, err)
	}
	out, err := h.uc.ProductFeed(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}

// ExportPDF godoc
// @Summary      Exportar catálogo filtrado a PDF
// @Description  admin puede filtrar por store_id; store_manager queda limitado a su tienda.
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Param        category   query  string  false  "Nombre de la categoría"
// @Param        store_id   query  string  false  "Tienda (solo admin)"
// @Param        q          query  string  false  "Búsqueda"
// @Param        min_price  query  string  false  "Precio mínimo"
// @Param        max_price  query  string  false  "Precio máximo"
// @Param        sort       query  string  false  "Orden"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/products/export.pdf [get]
func (h *CatalogHandler) ExportPDF(c *fiber.Ctx) error {
	q, err := parseProductQuery(c)
	if err != nil {
		return invalidQuery(c, err)
	}
	q.StoreID = c.Query("store_id")
	if scope := GetScopeStoreID(c); scope != "" {
		q.StoreID = scope
	}
	out, err := h.uc.ExportPDF(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo.pdf"`)
	return c.Send(out)
}
