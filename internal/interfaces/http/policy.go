package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
)

// Acciones con control de acceso por rol. El scoping por fila (p. ej. "solo
// mis leads") vive en los casos de uso porque necesita la fila.
const (
	ActionManageEmployees  = "employees.manage"
	ActionEditProperties   = "properties.edit"
	ActionDeleteProperty   = "properties.delete"
	ActionBulkUpload       = "properties.bulk_upload"
	ActionDeleteLead       = "leads.delete"
	ActionManagePostSales  = "post_sales.manage"
	ActionViewReports      = "reports.view"
	ActionViewActivities   = "activities.view"
	ActionTriggerScan      = "notifications.trigger_scan"
)

// policies tabla declarativa acción → roles permitidos. Cambiar un permiso
// es tocar una línea aquí, no buscar checks dispersos por los handlers.
var policies = map[string][]string{
	ActionManageEmployees:  {entity.RoleAdmin},
	ActionEditProperties:   {entity.RoleAdmin, entity.RoleManager, entity.RoleSalesAgent},
	ActionDeleteProperty:   {entity.RoleAdmin, entity.RoleManager},
	ActionBulkUpload:       {entity.RoleAdmin, entity.RoleManager},
	ActionDeleteLead:       {entity.RoleAdmin, entity.RoleManager},
	ActionManagePostSales:  {entity.RoleAdmin, entity.RoleManager},
	ActionViewReports:      {entity.RoleAdmin, entity.RoleManager},
	ActionViewActivities:   {entity.RoleAdmin, entity.RoleManager},
	ActionTriggerScan:      {entity.RoleAdmin},
}

// Allowed indica si el rol puede ejecutar la acción.
func Allowed(action, role string) bool {
	for _, r := range policies[action] {
		if r == role {
			return true
		}
	}
	return false
}

// RequirePermission autoriza una acción de la tabla de políticas
// (después de AuthMiddleware).
func RequirePermission(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if !Allowed(action, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
		}
		return c.Next()
	}
}
