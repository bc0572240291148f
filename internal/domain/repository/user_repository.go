package repository

import "github.com/jhoicas/estatecrm-api/internal/domain/entity"

// UserFilter criterios de listado de empleados.
type UserFilter struct {
	Search   string // nombre o email
	Role     string
	IsActive *bool
	Page     int
	PerPage  int
}

// UserRepository contrato de persistencia de usuarios/empleados.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(filter UserFilter) ([]*entity.User, int, error)
	ListByRoles(roles ...string) ([]*entity.User, error)
	Update(u *entity.User) error
	Delete(id string) error
}
