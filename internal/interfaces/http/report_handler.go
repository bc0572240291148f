package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
)

// ReportHandler maneja los reportes agregados.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Ventas por mes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Meses hacia atrás (default 12)"
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.Context(), c.QueryInt("months", 12))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LeadSources godoc
// @Summary      Desglose de orígenes de leads
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LeadSourcesReportResponse
// @Router       /api/reports/lead-sources [get]
func (h *ReportHandler) LeadSources(c *fiber.Ctx) error {
	out, err := h.uc.LeadSources(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Productivity godoc
// @Summary      Productividad por empleado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductivityReportResponse
// @Router       /api/reports/employee-productivity [get]
func (h *ReportHandler) Productivity(c *fiber.Ctx) error {
	out, err := h.uc.Productivity(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventario de propiedades por estado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
