package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, post_sale_id, payment_type, amount, due_date, paid_date,
	payment_method, reference_number, status, notes, created_at, updated_at`

// PaymentRepo implementación de PaymentRepository.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.PostSaleID, &p.PaymentType, &p.Amount, &p.DueDate, &p.PaidDate,
		&p.PaymentMethod, &p.ReferenceNumber, &p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un pago.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, post_sale_id, payment_type, amount, due_date, paid_date,
			payment_method, reference_number, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PostSaleID, p.PaymentType, p.Amount, p.DueDate, p.PaidDate,
		p.PaymentMethod, p.ReferenceNumber, p.Status, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago de una postventa concreta. Devuelve nil si no existe.
func (r *PaymentRepo) GetByID(id, postSaleID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 AND post_sale_id = $2`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, id, postSaleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ListByPostSale devuelve los pagos de una postventa.
func (r *PaymentRepo) ListByPostSale(postSaleID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE post_sale_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, postSaleID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un pago.
func (r *PaymentRepo) Update(p *entity.Payment) error {
	query := `
		UPDATE payments SET payment_type = $2, amount = $3, due_date = $4, paid_date = $5,
			payment_method = $6, reference_number = $7, status = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PaymentType, p.Amount, p.DueDate, p.PaidDate,
		p.PaymentMethod, p.ReferenceNumber, p.Status, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}
