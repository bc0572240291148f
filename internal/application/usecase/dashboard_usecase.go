package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// DashboardUseCase KPIs del panel principal.
type DashboardUseCase struct {
	reports    repository.ReportRepository
	activities repository.ActivityRepository
	leads      repository.LeadRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(reports repository.ReportRepository,
	activities repository.ActivityRepository, leads repository.LeadRepository) *DashboardUseCase {
	return &DashboardUseCase{reports: reports, activities: activities, leads: leads}
}

// Overview arma los KPIs. Los roles no privilegiados ven sus propios leads;
// el inventario y los ingresos son globales.
func (uc *DashboardUseCase) Overview(ctx context.Context, userID, role string) (*dto.DashboardOverviewResponse, error) {
	scope := repository.ReportScope{}
	privileged := role == entity.RoleAdmin || role == entity.RoleManager
	if !privileged {
		scope.AssignedEmployeeID = &userID
	}

	total, won, _, err := uc.reports.LeadCounts(ctx, scope)
	if err != nil {
		return nil, err
	}

	byStatus, err := uc.reports.PropertyStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	revenue, err := uc.reports.RevenueSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	pendingPayments, err := uc.reports.PendingPaymentCount(ctx)
	if err != nil {
		return nil, err
	}
	openTickets, err := uc.reports.OpenTicketCount(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.activities.ListRecent(now.AddDate(0, 0, -7), 10)
	if err != nil {
		return nil, err
	}

	var followScope *string
	if !privileged {
		followScope = &userID
	}
	upcoming, err := uc.leads.ListDueFollowUps(now, now.AddDate(0, 0, 7), followScope)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardOverviewResponse{
		TotalLeads:         total,
		ActiveListings:     byStatus[entity.PropertyAvailable],
		PropertiesSold:     byStatus[entity.PropertySold],
		PropertiesByStatus: byStatus,
		RevenueThisMonth:   revenue,
		PendingTasks:       pendingPayments + openTickets,
	}
	if total > 0 {
		resp.ConversionRate = float64(won) / float64(total) * 100
	}
	for _, a := range recent {
		resp.RecentActivity = append(resp.RecentActivity, ToActivityResponse(a))
	}
	for _, l := range upcoming {
		resp.UpcomingFollowUps = append(resp.UpcomingFollowUps, dto.FollowUpReminderResponse{
			LeadID:             l.ID,
			LeadName:           l.Name,
			Stage:              l.Stage,
			AssignedEmployeeID: l.AssignedEmployeeID,
			NextFollowUp:       l.NextFollowUp,
		})
	}
	return resp, nil
}
