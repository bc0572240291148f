package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
)

// PropertyFilter criterios de listado/búsqueda de propiedades.
type PropertyFilter struct {
	Search          string // title, location, description
	Status          string
	PropertyType    string
	ListingType     string
	City            string
	PriceMin        *decimal.Decimal
	PriceMax        *decimal.Decimal
	BedroomsMin     *int
	BathroomsMin    *int
	AssignedAgentID *string // scoping para roles no privilegiados
	Location        string  // match parcial sobre location
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
	WebsiteVisible  *bool
	Featured        *bool
	Limit           int // para el embed; 0 = sin límite explícito
	Page            int
	PerPage         int
}

// PropertyRepository contrato de persistencia de propiedades.
type PropertyRepository interface {
	Create(p *entity.Property) error
	GetByID(id string) (*entity.Property, error)
	List(filter PropertyFilter) ([]*entity.Property, int, error)
	Update(p *entity.Property) error
	Delete(id string) error
	DistinctTypes() ([]string, error)
	DistinctLocations() ([]string, error)
}
