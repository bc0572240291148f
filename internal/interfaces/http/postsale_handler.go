package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// PostSaleHandler maneja las peticiones HTTP para postventas, pagos y tickets.
type PostSaleHandler struct {
	uc *usecase.PostSaleUseCase
}

// NewPostSaleHandler construye el handler.
func NewPostSaleHandler(uc *usecase.PostSaleUseCase) *PostSaleHandler {
	return &PostSaleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear postventa para un lead cerrado-ganado
// @Tags         post-sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostSaleRequest  true  "Datos de la postventa"
// @Success      201   {object}  dto.PostSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/post-sales [post]
func (h *PostSaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePostSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LeadID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lead_id es requerido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar postventas
// @Tags         post-sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PostSaleListResponse
// @Router       /api/post-sales [get]
func (h *PostSaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Page = c.QueryInt("page", 1)
	page.PerPage = c.QueryInt("per_page", 20)
	page.DefaultPage()

	filter := repository.PostSaleFilter{
		PaymentStatus: c.Query("payment_status"),
		Page:          page.Page,
		PerPage:       page.PerPage,
	}

	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener postventa con pagos y tickets
// @Tags         post-sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la postventa"
// @Success      200  {object}  dto.PostSaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/post-sales/{id} [get]
func (h *PostSaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar postventa
// @Tags         post-sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la postventa"
// @Param        body  body  dto.UpdatePostSaleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PostSaleResponse
// @Router       /api/post-sales/{id} [put]
func (h *PostSaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePostSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddPayment godoc
// @Summary      Registrar pago de una postventa
// @Tags         post-sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la postventa"
// @Param        body  body  dto.PaymentRequest  true  "Pago"
// @Success      201   {object}  dto.PaymentResponse
// @Router       /api/post-sales/{id}/payments [post]
func (h *PostSaleHandler) AddPayment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Amount.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount es requerido"})
	}
	out, err := h.uc.AddPayment(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePayment godoc
// @Summary      Actualizar pago
// @Tags         post-sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path  string  true  "ID de la postventa"
// @Param        payment_id  path  string  true  "ID del pago"
// @Param        body        body  dto.UpdatePaymentRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.PaymentResponse
// @Router       /api/post-sales/{id}/payments/{payment_id} [put]
func (h *PostSaleHandler) UpdatePayment(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePayment(c.Params("id"), c.Params("payment_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddTicket godoc
// @Summary      Abrir ticket de soporte de una postventa
// @Tags         post-sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la postventa"
// @Param        body  body  dto.SupportTicketRequest  true  "Ticket"
// @Success      201   {object}  dto.SupportTicketResponse
// @Router       /api/post-sales/{id}/tickets [post]
func (h *PostSaleHandler) AddTicket(c *fiber.Ctx) error {
	var in dto.SupportTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.AddTicket(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTicket godoc
// @Summary      Actualizar ticket de soporte
// @Tags         post-sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "ID de la postventa"
// @Param        ticket_id  path  string  true  "ID del ticket"
// @Param        body       body  dto.UpdateSupportTicketRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.SupportTicketResponse
// @Router       /api/post-sales/{id}/tickets/{ticket_id} [put]
func (h *PostSaleHandler) UpdateTicket(c *fiber.Ctx) error {
	var in dto.UpdateSupportTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateTicket(c.Params("id"), c.Params("ticket_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
