package entity

import "time"

// PropertyShortcode filtro guardado de propiedades expuesto públicamente
// mediante un código de 8 caracteres para widgets embebibles.
type PropertyShortcode struct {
	ID             string
	Shortcode      string
	Name           string
	Description    string
	CreatedBy      string
	Filters        map[string]any // criterios de filtrado del embed
	DisplayOptions map[string]any // opciones de presentación del widget
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
