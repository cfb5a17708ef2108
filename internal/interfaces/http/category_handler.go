package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mallofcayman/catalog-api/internal/application/dto"
	"github.com/mallofcayman/catalog-api/internal/application/usecase"
)

// CategoryHandler consultas públicas del árbol de categorías y purga de caché (admin).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Tree godoc
// @Summary      Árbol de categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryTreeResponse
// @Router       /api/categories/tree [get]
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	out, err := h.uc.Tree(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      IDs de una categoría y todos sus descendientes
// @Tags         categories
// @Produce      json
// @Param        name  query  string  true  "Nombre de la categoría"
// @Success      200  {object}  dto.ResolvedSelectionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories/resolve [get]
func (h *CategoryHandler) Resolve(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "name es requerido"})
	}
	out, err := h.uc.Resolve(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Breadcrumb godoc
// @Summary      Ruta desde la raíz hasta la categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.BreadcrumbResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/breadcrumb [get]
func (h *CategoryHandler) Breadcrumb(c *fiber.Ctx) error {
	out, err := h.uc.Breadcrumb(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// InvalidateCache godoc
// @Summary      Purgar selecciones de categoría en caché
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/cache/invalidate [post]
func (h *CategoryHandler) InvalidateCache(c *fiber.Ctx) error {
	if err := h.uc.InvalidateCache(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
