package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación read-only para dashboard y reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LeadCounts devuelve total, ganados y perdidos dentro del scope.
func (r *ReportRepo) LeadCounts(ctx context.Context, scope repository.ReportScope) (int, int, int, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE stage = $1),
			COUNT(*) FILTER (WHERE stage = $2)
		FROM leads`
	args := []any{entity.StageClosedWon, entity.StageClosedLost}
	if scope.AssignedEmployeeID != nil {
		query += ` WHERE assigned_employee_id = $3`
		args = append(args, *scope.AssignedEmployeeID)
	}

	var total, won, lost int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total, &won, &lost); err != nil {
		return 0, 0, 0, fmt.Errorf("lead counts: %w", err)
	}
	return total, won, lost, nil
}

// PropertyStatusCounts agrupa propiedades por estado.
func (r *ReportRepo) PropertyStatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM properties GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("property status counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

// RevenueSince suma los precios de venta desde `from`.
func (r *ReportRepo) RevenueSince(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(sale_price), 0) FROM post_sales WHERE sale_date >= $1`, from).Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("revenue since: %w", err)
	}
	return revenue, nil
}

// PendingPaymentCount cuenta pagos pendientes o vencidos.
func (r *ReportRepo) PendingPaymentCount(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM payments WHERE status IN ($1, $2)`,
		entity.PaymentPending, entity.PaymentOverdue).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pending payment count: %w", err)
	}
	return count, nil
}

// OpenTicketCount cuenta incidencias abiertas o en curso.
func (r *ReportRepo) OpenTicketCount(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM support_tickets WHERE status IN ($1, $2)`,
		entity.TicketOpen, entity.TicketInProgress).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("open ticket count: %w", err)
	}
	return count, nil
}

// MonthlySales agrega ventas por mes desde `from`.
func (r *ReportRepo) MonthlySales(ctx context.Context, from time.Time) ([]repository.MonthlySalesRow, error) {
	query := `
		SELECT to_char(sale_date, 'YYYY-MM') AS month, COUNT(*), COALESCE(SUM(sale_price), 0)
		FROM post_sales WHERE sale_date >= $1
		GROUP BY month ORDER BY month`
	rows, err := r.q.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlySalesRow
	for rows.Next() {
		var row repository.MonthlySalesRow
		if err := rows.Scan(&row.Month, &row.Count, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// LeadSourceCounts agrupa leads por origen dentro del scope.
func (r *ReportRepo) LeadSourceCounts(ctx context.Context, scope repository.ReportScope) ([]repository.SourceCountRow, error) {
	query := `SELECT source, COUNT(*) FROM leads`
	var args []any
	if scope.AssignedEmployeeID != nil {
		query += ` WHERE assigned_employee_id = $1`
		args = append(args, *scope.AssignedEmployeeID)
	}
	query += ` GROUP BY source ORDER BY COUNT(*) DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("lead source counts: %w", err)
	}
	defer rows.Close()

	var out []repository.SourceCountRow
	for rows.Next() {
		var row repository.SourceCountRow
		if err := rows.Scan(&row.Source, &row.Count); err != nil {
			return nil, fmt.Errorf("scan source count: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// EmployeeProductivity métricas por empleado: leads totales, ganados e ingresos.
func (r *ReportRepo) EmployeeProductivity(ctx context.Context) ([]repository.EmployeeProductivityRow, error) {
	query := `
		SELECT u.id, u.first_name || ' ' || u.last_name,
			COUNT(l.id),
			COUNT(l.id) FILTER (WHERE l.stage = $1),
			COALESCE(SUM(ps.sale_price) FILTER (WHERE l.stage = $1), 0)
		FROM users u
		LEFT JOIN leads l ON l.assigned_employee_id = u.id
		LEFT JOIN post_sales ps ON ps.lead_id = l.id
		WHERE u.is_active = TRUE
		GROUP BY u.id, u.first_name, u.last_name
		ORDER BY COUNT(l.id) DESC`
	rows, err := r.q.Query(ctx, query, entity.StageClosedWon)
	if err != nil {
		return nil, fmt.Errorf("employee productivity: %w", err)
	}
	defer rows.Close()

	var out []repository.EmployeeProductivityRow
	for rows.Next() {
		var row repository.EmployeeProductivityRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.TotalLeads, &row.WonLeads, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan productivity: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
