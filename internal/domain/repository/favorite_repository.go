package repository

import "github.com/jhoicas/estatecrm-api/internal/domain/entity"

// FavoriteFilter criterios de listado de favoritos de un usuario.
type FavoriteFilter struct {
	Search       string // title, location, description de la propiedad
	PropertyType string
	SortBy       string // created_at (default), price_asc, price_desc, area
	Page         int
	PerPage      int
}

// FavoriteRepository pares únicos (usuario, propiedad).
type FavoriteRepository interface {
	Create(f *entity.Favorite) error
	GetByUserAndProperty(userID, propertyID string) (*entity.Favorite, error)
	ListByUser(userID string, filter FavoriteFilter) ([]*entity.Favorite, int, error)
	Delete(id string) error
}
