package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
)

// LeadFilter criterios de listado/búsqueda de leads.
type LeadFilter struct {
	Search             string // name, email, phone, notes
	Stage              string
	Source             string
	AssignedEmployeeID *string
	PropertyID         *string
	BudgetMin          *decimal.Decimal
	BudgetMax          *decimal.Decimal
	CreatedFrom        *time.Time
	CreatedTo          *time.Time
	Page               int
	PerPage            int
}

// LeadRepository contrato de persistencia de leads.
type LeadRepository interface {
	Create(l *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	List(filter LeadFilter) ([]*entity.Lead, int, error)
	Update(l *entity.Lead) error
	Delete(id string) error
	DistinctSources() ([]string, error)
	// ListDueFollowUps devuelve leads con next_follow_up en [from, to) y
	// etapa no terminal. assignedEmployeeID != nil limita al empleado.
	ListDueFollowUps(from, to time.Time, assignedEmployeeID *string) ([]*entity.Lead, error)
}
