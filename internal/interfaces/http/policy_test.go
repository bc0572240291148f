package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/estatecrm-api/internal/interfaces/http"
)

// La tabla de políticas es la única fuente de verdad del RBAC por acción.
func TestAllowed_TablaDePoliticas(t *testing.T) {
	cases := []struct {
		name   string
		action string
		role   string
		want   bool
	}{
		{"admin gestiona empleados", apphttp.ActionManageEmployees, "admin", true},
		{"manager no gestiona empleados", apphttp.ActionManageEmployees, "manager", false},
		{"agente no gestiona empleados", apphttp.ActionManageEmployees, "sales_agent", false},
		{"manager edita propiedades", apphttp.ActionEditProperties, "manager", true},
		{"agente edita propiedades", apphttp.ActionEditProperties, "sales_agent", true},
		{"empleado no edita propiedades", apphttp.ActionEditProperties, "employee", false},
		{"manager borra propiedades", apphttp.ActionDeleteProperty, "manager", true},
		{"agente no borra propiedades", apphttp.ActionDeleteProperty, "sales_agent", false},
		{"agente no sube en lote", apphttp.ActionBulkUpload, "sales_agent", false},
		{"manager borra leads", apphttp.ActionDeleteLead, "manager", true},
		{"agente no borra leads", apphttp.ActionDeleteLead, "sales_agent", false},
		{"manager ve reportes", apphttp.ActionViewReports, "manager", true},
		{"empleado no ve reportes", apphttp.ActionViewReports, "employee", false},
		{"solo admin dispara el escaneo", apphttp.ActionTriggerScan, "manager", false},
		{"admin dispara el escaneo", apphttp.ActionTriggerScan, "admin", true},
		{"rol desconocido nunca pasa", apphttp.ActionEditProperties, "intruso", false},
		{"acción desconocida nunca pasa", "accion.inexistente", "admin", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apphttp.Allowed(tc.action, tc.role))
		})
	}
}

func TestRequirePermission_RespetaLaTabla(t *testing.T) {
	app := fiber.New()
	app.Get("/reports",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(apphttp.ActionViewReports),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	// manager autorizado
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("Authorization", tokenForRole(t, "manager"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// sales_agent bloqueado
	req = httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("Authorization", tokenForRole(t, "sales_agent"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
