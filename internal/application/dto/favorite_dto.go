package dto

import "time"

// FavoriteRequest entrada para agregar un favorito.
type FavoriteRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
}

// FavoriteResponse salida de un favorito con la propiedad asociada.
type FavoriteResponse struct {
	ID         string            `json:"id"`
	PropertyID string            `json:"property_id"`
	Property   *PropertyResponse `json:"property,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// FavoriteListResponse listado paginado de favoritos.
type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	Meta      PageResponse       `json:"meta"`
}

// FavoriteCheckResponse indica si la propiedad está en favoritos.
type FavoriteCheckResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// FavoriteToggleResponse resultado del toggle.
type FavoriteToggleResponse struct {
	IsFavorite bool   `json:"is_favorite"`
	Action     string `json:"action"` // added, removed
}
