package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// FavoriteHandler maneja los favoritos por usuario.
type FavoriteHandler struct {
	uc *usecase.FavoriteUseCase
}

// NewFavoriteHandler construye el handler.
func NewFavoriteHandler(uc *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// List godoc
// @Summary      Listar favoritos del usuario
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Param        sort_by  query  string  false  "created_at, price_asc, price_desc, area"
// @Success      200  {object}  dto.FavoriteListResponse
// @Router       /api/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Page = c.QueryInt("page", 1)
	page.PerPage = c.QueryInt("per_page", 20)
	page.DefaultPage()

	filter := repository.FavoriteFilter{
		Search:       c.Query("search"),
		PropertyType: c.Query("property_type"),
		SortBy:       c.Query("sort_by"),
		Page:         page.Page,
		PerPage:      page.PerPage,
	}

	out, err := h.uc.List(GetUserID(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar propiedad a favoritos
// @Tags         favorites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FavoriteRequest  true  "Propiedad"
// @Success      201   {object}  dto.FavoriteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/favorites [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	var in dto.FavoriteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PropertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "property_id es requerido"})
	}
	out, err := h.uc.Add(GetUserID(c), in.PropertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Quitar propiedad de favoritos
// @Tags         favorites
// @Security     Bearer
// @Param        property_id  path  string  true  "ID de la propiedad"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/favorites/{property_id} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(GetUserID(c), c.Params("property_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Check godoc
// @Summary      Consultar si una propiedad está en favoritos
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Param        property_id  path  string  true  "ID de la propiedad"
// @Success      200  {object}  dto.FavoriteCheckResponse
// @Router       /api/favorites/{property_id}/check [get]
func (h *FavoriteHandler) Check(c *fiber.Ctx) error {
	out, err := h.uc.Check(GetUserID(c), c.Params("property_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar favorito
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Param        property_id  path  string  true  "ID de la propiedad"
// @Success      200  {object}  dto.FavoriteToggleResponse
// @Router       /api/favorites/{property_id}/toggle [post]
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.Toggle(GetUserID(c), c.Params("property_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
