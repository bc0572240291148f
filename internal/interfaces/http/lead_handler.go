package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
	"github.com/jhoicas/estatecrm-api/pkg/daterange"
)

// LeadHandler maneja las peticiones HTTP para leads y su pipeline.
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Datos del lead"
// @Success      201   {object}  dto.LeadResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateFromWebsite godoc
// @Summary      Crear lead desde el formulario del sitio web (público)
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WebsiteFormRequest  true  "Formulario"
// @Success      201   {object}  dto.LeadResponse
// @Router       /api/leads/website-form [post]
func (h *LeadHandler) CreateFromWebsite(c *fiber.Ctx) error {
	var in dto.WebsiteFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.CreateFromWebsite(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar leads con filtros
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LeadListResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), GetRole(c), h.leadFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *LeadHandler) leadFilter(c *fiber.Ctx) repository.LeadFilter {
	var page dto.PageRequest
	page.Page = c.QueryInt("page", 1)
	page.PerPage = c.QueryInt("per_page", 20)
	page.DefaultPage()

	filter := repository.LeadFilter{
		Search:  c.Query("search"),
		Stage:   c.Query("stage"),
		Source:  c.Query("source"),
		Page:    page.Page,
		PerPage: page.PerPage,
	}
	if v := c.Query("assigned_employee_id"); v != "" {
		filter.AssignedEmployeeID = &v
	}
	if v := c.Query("property_id"); v != "" {
		filter.PropertyID = &v
	}
	if preset := c.Query("date_range"); preset != "" {
		filter.CreatedFrom, filter.CreatedTo = daterange.Window(preset, time.Now())
	}
	return filter
}

// GetByID godoc
// @Summary      Obtener lead por ID
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lead"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LeadResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lead
// @Tags         leads
// @Security     Bearer
// @Param        id  path  string  true  "ID del lead"
// @Success      204  "Sin contenido"
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Pipeline godoc
// @Summary      Leads agrupados por etapa del pipeline
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PipelineResponse
// @Router       /api/leads/pipeline [get]
func (h *LeadHandler) Pipeline(c *fiber.Ctx) error {
	out, err := h.uc.Pipeline(GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stages godoc
// @Summary      Etapas del pipeline en orden
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/leads/stages [get]
func (h *LeadHandler) Stages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"stages": h.uc.Stages()})
}

// Sources godoc
// @Summary      Fuentes de lead en uso
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/leads/sources [get]
func (h *LeadHandler) Sources(c *fiber.Ctx) error {
	sources, err := h.uc.Sources()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sources": sources})
}

// ListByProperty godoc
// @Summary      Leads interesados en una propiedad
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la propiedad"
// @Success      200  {object}  map[string][]dto.LeadResponse
// @Router       /api/properties/{id}/leads [get]
func (h *LeadHandler) ListByProperty(c *fiber.Ctx) error {
	leads, err := h.uc.ListByProperty(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"leads": leads})
}

// AddCommunication godoc
// @Summary      Registrar comunicación con un lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.CommunicationRequest  true  "Comunicación"
// @Success      201   {object}  dto.CommunicationResponse
// @Router       /api/leads/{id}/communications [post]
func (h *LeadHandler) AddCommunication(c *fiber.Ctx) error {
	var in dto.CommunicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type es requerido"})
	}
	out, err := h.uc.AddCommunication(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCommunications godoc
// @Summary      Historial de comunicaciones de un lead
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lead"
// @Success      200  {object}  map[string][]dto.CommunicationResponse
// @Router       /api/leads/{id}/communications [get]
func (h *LeadHandler) ListCommunications(c *fiber.Ctx) error {
	comms, err := h.uc.ListCommunications(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"communications": comms})
}
