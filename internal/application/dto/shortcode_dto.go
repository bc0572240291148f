package dto

import "time"

// ShortcodeRequest entrada para crear o actualizar un shortcode.
type ShortcodeRequest struct {
	Name           string         `json:"name" validate:"required,min=1,max=200"`
	Description    string         `json:"description"`
	Filters        map[string]any `json:"filters"`
	DisplayOptions map[string]any `json:"display_options"`
	IsActive       *bool          `json:"is_active"`
}

// ShortcodeResponse salida de un shortcode.
type ShortcodeResponse struct {
	ID             string         `json:"id"`
	Shortcode      string         `json:"shortcode"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Filters        map[string]any `json:"filters"`
	DisplayOptions map[string]any `json:"display_options"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// EmbedResponse propiedades del widget público de un shortcode.
type EmbedResponse struct {
	Shortcode      string             `json:"shortcode"`
	Name           string             `json:"name"`
	DisplayOptions map[string]any     `json:"display_options"`
	Properties     []PropertyResponse `json:"properties"`
	Total          int                `json:"total"`
}

// EmbedLeadRequest captura pública de un lead desde el widget.
type EmbedLeadRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Phone      string  `json:"phone"`
	Message    string  `json:"message"`
	PropertyID *string `json:"property_id"`
}
