package repository

import "github.com/jhoicas/estatecrm-api/internal/domain/entity"

// PostSaleFilter criterios de listado de postventas.
type PostSaleFilter struct {
	PaymentStatus string
	// LeadIDs limita a postventas de estos leads (scoping por empleado).
	LeadIDs []string
	Page    int
	PerPage int
}

// PostSaleRepository contrato de persistencia de postventas.
type PostSaleRepository interface {
	Create(ps *entity.PostSale) error
	GetByID(id string) (*entity.PostSale, error)
	GetByLeadID(leadID string) (*entity.PostSale, error)
	List(filter PostSaleFilter) ([]*entity.PostSale, int, error)
	Update(ps *entity.PostSale) error
}

// PaymentRepository pagos asociados a una postventa.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	GetByID(id, postSaleID string) (*entity.Payment, error)
	ListByPostSale(postSaleID string) ([]*entity.Payment, error)
	Update(p *entity.Payment) error
}

// SupportTicketRepository incidencias asociadas a una postventa.
type SupportTicketRepository interface {
	Create(t *entity.SupportTicket) error
	GetByID(id, postSaleID string) (*entity.SupportTicket, error)
	ListByPostSale(postSaleID string) ([]*entity.SupportTicket, error)
	Update(t *entity.SupportTicket) error
}
