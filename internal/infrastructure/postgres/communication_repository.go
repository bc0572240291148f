package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.CommunicationRepository = (*CommunicationRepo)(nil)

// CommunicationRepo implementación de CommunicationRepository.
type CommunicationRepo struct {
	q Querier
}

// NewCommunicationRepository construye el adaptador.
func NewCommunicationRepository(q Querier) *CommunicationRepo {
	return &CommunicationRepo{q: q}
}

// Create persiste una comunicación (append-only, sin update ni delete).
func (r *CommunicationRepo) Create(c *entity.Communication) error {
	query := `
		INSERT INTO communications (id, lead_id, type, subject, content, direction, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.LeadID, c.Type, c.Subject, c.Content, c.Direction, c.CreatedBy, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert communication: %w", err)
	}
	return nil
}

// ListByLead devuelve el historial de un lead, más reciente primero.
func (r *CommunicationRepo) ListByLead(leadID string) ([]*entity.Communication, error) {
	query := `
		SELECT id, lead_id, type, subject, content, direction, created_by, created_at
		FROM communications WHERE lead_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Communication
	for rows.Next() {
		var c entity.Communication
		if err := rows.Scan(&c.ID, &c.LeadID, &c.Type, &c.Subject, &c.Content, &c.Direction, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan communication: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
