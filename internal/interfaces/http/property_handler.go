package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// PropertyHandler maneja las peticiones HTTP para propiedades.
type PropertyHandler struct {
	uc *usecase.PropertyUseCase
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

func queryDecimal(c *fiber.Ctx, key string) *decimal.Decimal {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

func queryIntPtr(c *fiber.Ctx, key string) *int {
	if c.Query(key) == "" {
		return nil
	}
	n := c.QueryInt(key)
	return &n
}

func queryBoolPtr(c *fiber.Ctx, key string) *bool {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	b := v == "true" || v == "1"
	return &b
}

// Create godoc
// @Summary      Crear propiedad
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PropertyRequest  true  "Datos de la propiedad"
// @Success      201   {object}  dto.PropertyResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.PropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.PropertyType == "" || in.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, property_type y location son requeridos"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar propiedades con filtros
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PropertyListResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Page = c.QueryInt("page", 1)
	page.PerPage = c.QueryInt("per_page", 20)
	page.DefaultPage()

	filter := repository.PropertyFilter{
		Search:         c.Query("search"),
		Status:         c.Query("status"),
		PropertyType:   c.Query("property_type"),
		ListingType:    c.Query("listing_type"),
		City:           c.Query("city"),
		Location:       c.Query("location"),
		PriceMin:       queryDecimal(c, "price_min"),
		PriceMax:       queryDecimal(c, "price_max"),
		BedroomsMin:    queryIntPtr(c, "bedrooms_min"),
		BathroomsMin:   queryIntPtr(c, "bathrooms_min"),
		WebsiteVisible: queryBoolPtr(c, "website_visible"),
		Featured:       queryBoolPtr(c, "featured"),
		Page:           page.Page,
		PerPage:        page.PerPage,
	}
	if v := c.Query("assigned_agent_id"); v != "" {
		filter.AssignedAgentID = &v
	}

	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener propiedad por ID
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la propiedad"
// @Success      200  {object}  dto.PropertyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar propiedad
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la propiedad"
// @Param        body  body  dto.UpdatePropertyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PropertyResponse
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar propiedad
// @Tags         properties
// @Security     Bearer
// @Param        id  path  string  true  "ID de la propiedad"
// @Success      204  "Sin contenido"
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkUpload godoc
// @Summary      Alta masiva de propiedades (todo o nada)
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUploadRequest  true  "Lote de propiedades"
// @Success      201   {object}  dto.BulkUploadResponse
// @Router       /api/properties/bulk-upload [post]
func (h *PropertyHandler) BulkUpload(c *fiber.Ctx) error {
	var in dto.BulkUploadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BulkUpload(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Types godoc
// @Summary      Tipos de propiedad en uso
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/properties/types [get]
func (h *PropertyHandler) Types(c *fiber.Ctx) error {
	types, err := h.uc.Types()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"types": types})
}

// Locations godoc
// @Summary      Ubicaciones en uso
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/properties/locations [get]
func (h *PropertyHandler) Locations(c *fiber.Ctx) error {
	locations, err := h.uc.Locations()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"locations": locations})
}

// WebsiteVisible godoc
// @Summary      Propiedades visibles en el sitio web (público)
// @Tags         properties
// @Produce      json
// @Success      200  {object}  map[string][]dto.PropertyResponse
// @Router       /api/properties/website-visible [get]
func (h *PropertyHandler) WebsiteVisible(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	props, err := h.uc.ListWebsiteVisible(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"properties": props})
}
