package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// ActivityHandler maneja el feed de actividad del equipo.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Feed de actividad con filtros
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Tipo de actividad (all = sin filtro)"
// @Param        search  query  string  false  "Busca en descripción y nombre de usuario"
// @Success      200  {object}  dto.ActivityListResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Page = c.QueryInt("page", 1)
	page.PerPage = c.QueryInt("per_page", 20)
	page.DefaultPage()

	filter := repository.ActivityFilter{
		ActivityType: c.Query("type"),
		Search:       c.Query("search"),
		Page:         page.Page,
		PerPage:      page.PerPage,
	}

	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas del feed de actividad
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (default 30)"
// @Success      200  {object}  dto.ActivityStatsResponse
// @Router       /api/activities/stats [get]
func (h *ActivityHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.QueryInt("days", 30))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
