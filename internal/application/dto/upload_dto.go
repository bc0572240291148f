package dto

// UploadResponse salida de una subida individual.
type UploadResponse struct {
	URL string `json:"url"`
}

// MultiUploadResponse salida de una subida múltiple.
type MultiUploadResponse struct {
	URLs []string `json:"urls"`
}

// DeleteUploadRequest entrada para borrar una imagen por URL.
type DeleteUploadRequest struct {
	URL string `json:"url" validate:"required"`
}
