package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// ReportUseCase reportes agregados para admin y manager.
type ReportUseCase struct {
	reports repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reports repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// Sales desempeño de ventas de los últimos `months` meses.
func (uc *ReportUseCase) Sales(ctx context.Context, months int) (*dto.SalesReportResponse, error) {
	if months <= 0 {
		months = 12
	}
	from := time.Now().UTC().AddDate(0, -months, 0)

	rows, err := uc.reports.MonthlySales(ctx, from)
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesReportResponse{TotalRevenue: decimal.Zero}
	for _, row := range rows {
		resp.Months = append(resp.Months, dto.MonthlySales{
			Month:   row.Month,
			Count:   row.Count,
			Revenue: row.Revenue,
		})
		resp.TotalSales += row.Count
		resp.TotalRevenue = resp.TotalRevenue.Add(row.Revenue)
	}
	return resp, nil
}

// LeadSources desglose de orígenes de leads. Los roles no privilegiados
// ven solo sus propios leads.
func (uc *ReportUseCase) LeadSources(ctx context.Context, userID, role string) (*dto.LeadSourcesReportResponse, error) {
	scope := repository.ReportScope{}
	if role != entity.RoleAdmin && role != entity.RoleManager {
		scope.AssignedEmployeeID = &userID
	}

	rows, err := uc.reports.LeadSourceCounts(ctx, scope)
	if err != nil {
		return nil, err
	}

	resp := &dto.LeadSourcesReportResponse{}
	for _, row := range rows {
		resp.Total += row.Count
	}
	for _, row := range rows {
		e := dto.LeadSourceEntry{Source: row.Source, Count: row.Count}
		if resp.Total > 0 {
			e.Percentage = float64(row.Count) / float64(resp.Total) * 100
		}
		resp.Sources = append(resp.Sources, e)
	}
	return resp, nil
}

// Productivity métricas por empleado (admin y manager).
func (uc *ReportUseCase) Productivity(ctx context.Context) (*dto.ProductivityReportResponse, error) {
	rows, err := uc.reports.EmployeeProductivity(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductivityReportResponse{}
	for _, row := range rows {
		e := dto.ProductivityEntry{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			TotalLeads:   row.TotalLeads,
			WonLeads:     row.WonLeads,
			Revenue:      row.Revenue,
		}
		if row.TotalLeads > 0 {
			e.ConversionRate = float64(row.WonLeads) / float64(row.TotalLeads) * 100
		}
		resp.Employees = append(resp.Employees, e)
	}
	return resp, nil
}

// Inventory inventario de propiedades agrupado por estado.
func (uc *ReportUseCase) Inventory(ctx context.Context) (*dto.InventoryReportResponse, error) {
	byStatus, err := uc.reports.PropertyStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.InventoryReportResponse{ByStatus: byStatus}
	for _, n := range byStatus {
		resp.Total += n
	}
	return resp, nil
}
