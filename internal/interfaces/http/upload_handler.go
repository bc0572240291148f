package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/infrastructure/storage"
)

// UploadHandler maneja la subida y borrado de imágenes.
type UploadHandler struct {
	store *storage.LocalStore
}

// NewUploadHandler construye el handler.
func NewUploadHandler(store *storage.LocalStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Single godoc
// @Summary      Subir una imagen
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagen (png, jpg, jpeg, gif, webp, svg, máx 10MB)"
// @Success      201  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/upload/image [post]
func (h *UploadHandler) Single(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta el campo image"})
	}
	url, err := h.store.Save(fh)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}

// Multiple godoc
// @Summary      Subir varias imágenes
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        images  formData  file  true  "Imágenes"
// @Success      201  {object}  dto.MultiUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/upload/images [post]
func (h *UploadHandler) Multiple(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formulario multipart inválido"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta el campo images"})
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.store.Save(fh)
		if err != nil {
			return respondError(c, err)
		}
		urls = append(urls, url)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MultiUploadResponse{URLs: urls})
}

// Delete godoc
// @Summary      Eliminar imagen por URL
// @Tags         uploads
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.DeleteUploadRequest  true  "URL de la imagen"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/upload/image [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteUploadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "url es requerida"})
	}
	if err := h.store.Delete(in.URL); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
