package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
)

// NotificationHandler maneja los avisos in-app del usuario autenticado.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar avisos del usuario
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread_only  query  bool  false  "Solo no leídos"
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Page = c.QueryInt("page", 1)
	page.PerPage = c.QueryInt("per_page", 20)
	page.DefaultPage()

	unreadOnly := c.Query("unread_only") == "true"
	out, err := h.uc.List(GetUserID(c), unreadOnly, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar aviso como leído
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID del aviso"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Marcar todos los avisos como leídos
// @Tags         notifications
// @Security     Bearer
// @Success      204  "Sin contenido"
// @Router       /api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar aviso
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID del aviso"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FollowUpReminders godoc
// @Summary      Seguimientos que vencen en las próximas 24 horas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]dto.FollowUpReminderResponse
// @Router       /api/notifications/follow-up-reminders [get]
func (h *NotificationHandler) FollowUpReminders(c *fiber.Ctx) error {
	reminders, err := h.uc.FollowUpReminders(GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"reminders": reminders})
}

// CheckFollowUps godoc
// @Summary      Ejecutar el escaneo de seguimientos por vencer
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScanResultResponse
// @Router       /api/notifications/check-follow-ups [post]
func (h *NotificationHandler) CheckFollowUps(c *fiber.Ctx) error {
	out, err := h.uc.CheckFollowUps()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
