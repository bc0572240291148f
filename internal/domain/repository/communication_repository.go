package repository

import "github.com/jhoicas/estatecrm-api/internal/domain/entity"

// CommunicationRepository historial append-only de interacciones de leads.
type CommunicationRepository interface {
	Create(c *entity.Communication) error
	ListByLead(leadID string) ([]*entity.Communication, error)
}
