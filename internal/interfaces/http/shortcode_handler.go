package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
)

// ShortcodeHandler maneja los shortcodes de widgets embebibles y sus
// endpoints públicos.
type ShortcodeHandler struct {
	uc    *usecase.ShortcodeUseCase
	leads *usecase.LeadUseCase
}

// NewShortcodeHandler construye el handler.
func NewShortcodeHandler(uc *usecase.ShortcodeUseCase, leads *usecase.LeadUseCase) *ShortcodeHandler {
	return &ShortcodeHandler{uc: uc, leads: leads}
}

// Create godoc
// @Summary      Crear shortcode
// @Tags         shortcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShortcodeRequest  true  "Datos del shortcode"
// @Success      201   {object}  dto.ShortcodeResponse
// @Router       /api/shortcodes [post]
func (h *ShortcodeHandler) Create(c *fiber.Ctx) error {
	var in dto.ShortcodeRequest
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

// List godoc
// @Summary      Listar shortcodes propios
// @Tags         shortcodes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]dto.ShortcodeResponse
// @Router       /api/shortcodes [get]
func (h *ShortcodeHandler) List(c *fiber.Ctx) error {
	codes, err := h.uc.List(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"shortcodes": codes})
}

// GetByID godoc
// @Summary      Obtener shortcode propio
// @Tags         shortcodes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del shortcode"
// @Success      200  {object}  dto.ShortcodeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shortcodes/{id} [get]
func (h *ShortcodeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar shortcode propio
// @Tags         shortcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del shortcode"
// @Param        body  body  dto.ShortcodeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ShortcodeResponse
// @Router       /api/shortcodes/{id} [put]
func (h *ShortcodeHandler) Update(c *fiber.Ctx) error {
	var in dto.ShortcodeRequest
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
// @Summary      Eliminar shortcode propio
// @Tags         shortcodes
// @Security     Bearer
// @Param        id  path  string  true  "ID del shortcode"
// @Success      204  "Sin contenido"
// @Router       /api/shortcodes/{id} [delete]
func (h *ShortcodeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Embed godoc
// @Summary      Propiedades de un shortcode activo (público)
// @Tags         shortcodes
// @Produce      json
// @Param        code  path  string  true  "Código del shortcode"
// @Success      200  {object}  dto.EmbedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/embed/{code} [get]
func (h *ShortcodeHandler) Embed(c *fiber.Ctx) error {
	out, err := h.uc.Embed(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EmbedLead godoc
// @Summary      Capturar lead desde el widget (público)
// @Tags         shortcodes
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del shortcode"
// @Param        body  body  dto.EmbedLeadRequest  true  "Datos del contacto"
// @Success      201   {object}  dto.LeadResponse
// @Router       /api/embed/{code}/lead [post]
func (h *ShortcodeHandler) EmbedLead(c *fiber.Ctx) error {
	var in dto.EmbedLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	ownerID, name, err := h.uc.Owner(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.leads.CreateFromEmbed(ownerID, name, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// widgetTmpl plantilla autocontenida del widget embebible. Se sirve como
// documento HTML pensado para un iframe.
var widgetTmpl = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
  body { font-family: sans-serif; margin: 0; padding: 12px; background: #fff; }
  .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 12px; }
  .card { border: 1px solid #ddd; border-radius: 6px; padding: 12px; }
  .card h3 { margin: 0 0 4px; font-size: 15px; }
  .card .price { font-weight: bold; color: #1a7f37; }
  .card .meta { color: #666; font-size: 13px; }
  .empty { color: #666; padding: 24px; text-align: center; }
</style>
</head>
<body>
{{if .Properties}}
<div class="grid">
{{range .Properties}}
  <div class="card">
    <h3>{{.Title}}</h3>
    <div class="price">{{.Price}}</div>
    <div class="meta">{{.Location}}{{if .City}}, {{.City}}{{end}}</div>
    <div class="meta">{{if .Bedrooms}}{{.Bedrooms}} hab{{end}}{{if .Bathrooms}} · {{.Bathrooms}} baños{{end}}</div>
  </div>
{{end}}
</div>
{{else}}
<div class="empty">No hay propiedades disponibles.</div>
{{end}}
</body>
</html>
`))

// Widget godoc
// @Summary      Widget HTML embebible de un shortcode (público)
// @Tags         shortcodes
// @Produce      html
// @Param        code  path  string  true  "Código del shortcode"
// @Success      200  {string}  string  "Documento HTML"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/embed/{code}/widget [get]
func (h *ShortcodeHandler) Widget(c *fiber.Ctx) error {
	out, err := h.uc.Embed(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := widgetTmpl.Execute(&buf, out); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
