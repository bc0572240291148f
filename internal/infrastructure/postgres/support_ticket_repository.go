package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.SupportTicketRepository = (*SupportTicketRepo)(nil)

const ticketColumns = `id, post_sale_id, title, description, priority, status,
	assigned_to, resolution, created_at, updated_at`

// SupportTicketRepo implementación de SupportTicketRepository.
type SupportTicketRepo struct {
	q Querier
}

// NewSupportTicketRepository construye el adaptador.
func NewSupportTicketRepository(q Querier) *SupportTicketRepo {
	return &SupportTicketRepo{q: q}
}

func scanTicket(row pgx.Row) (*entity.SupportTicket, error) {
	var t entity.SupportTicket
	err := row.Scan(
		&t.ID, &t.PostSaleID, &t.Title, &t.Description, &t.Priority, &t.Status,
		&t.AssignedTo, &t.Resolution, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una incidencia.
func (r *SupportTicketRepo) Create(t *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (id, post_sale_id, title, description, priority, status,
			assigned_to, resolution, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.PostSaleID, t.Title, t.Description, t.Priority, t.Status,
		t.AssignedTo, t.Resolution, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert support ticket: %w", err)
	}
	return nil
}

// GetByID obtiene una incidencia de una postventa concreta. Devuelve nil si no existe.
func (r *SupportTicketRepo) GetByID(id, postSaleID string) (*entity.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1 AND post_sale_id = $2`
	t, err := scanTicket(r.q.QueryRow(context.Background(), query, id, postSaleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get support ticket: %w", err)
	}
	return t, nil
}

// ListByPostSale devuelve las incidencias de una postventa.
func (r *SupportTicketRepo) ListByPostSale(postSaleID string) ([]*entity.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE post_sale_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, postSaleID)
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupportTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan support ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza una incidencia.
func (r *SupportTicketRepo) Update(t *entity.SupportTicket) error {
	query := `
		UPDATE support_tickets SET title = $2, description = $3, priority = $4, status = $5,
			assigned_to = $6, resolution = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, t.Priority, t.Status,
		t.AssignedTo, t.Resolution, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update support ticket: %w", err)
	}
	return nil
}
