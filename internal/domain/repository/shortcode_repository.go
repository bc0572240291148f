package repository

import "github.com/jhoicas/estatecrm-api/internal/domain/entity"

// ShortcodeRepository filtros guardados con código público.
type ShortcodeRepository interface {
	Create(s *entity.PropertyShortcode) error
	GetByIDAndOwner(id, ownerID string) (*entity.PropertyShortcode, error)
	// GetByCode busca por código público; devuelve nil si no existe.
	GetByCode(code string) (*entity.PropertyShortcode, error)
	ListByOwner(ownerID string) ([]*entity.PropertyShortcode, error)
	Update(s *entity.PropertyShortcode) error
	Delete(id string) error
	CodeExists(code string) (bool, error)
}
