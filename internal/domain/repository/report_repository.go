package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportScope limita los agregados a un empleado (roles no privilegiados).
// AssignedEmployeeID == nil significa sin restricción.
type ReportScope struct {
	AssignedEmployeeID *string
}

// MonthlySalesRow ventas agregadas de un mes.
type MonthlySalesRow struct {
	Month   string // YYYY-MM
	Count   int
	Revenue decimal.Decimal
}

// SourceCountRow leads agrupados por origen.
type SourceCountRow struct {
	Source string
	Count  int
}

// EmployeeProductivityRow métricas por empleado.
type EmployeeProductivityRow struct {
	EmployeeID   string
	EmployeeName string
	TotalLeads   int
	WonLeads     int
	Revenue      decimal.Decimal
}

// ReportRepository consultas read-only de agregación para dashboard y reportes.
type ReportRepository interface {
	// LeadCounts devuelve total, closed_won y closed_lost dentro del scope.
	LeadCounts(ctx context.Context, scope ReportScope) (total, won, lost int, err error)
	PropertyStatusCounts(ctx context.Context) (map[string]int, error)
	RevenueSince(ctx context.Context, from time.Time) (decimal.Decimal, error)
	PendingPaymentCount(ctx context.Context) (int, error)
	OpenTicketCount(ctx context.Context) (int, error)
	MonthlySales(ctx context.Context, from time.Time) ([]MonthlySalesRow, error)
	LeadSourceCounts(ctx context.Context, scope ReportScope) ([]SourceCountRow, error)
	EmployeeProductivity(ctx context.Context) ([]EmployeeProductivityRow, error)
}
