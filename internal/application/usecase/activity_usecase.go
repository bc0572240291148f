package usecase

import (
	"time"

	"github.com/jhoicas/estatecrm-api/internal/application/dto"
	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// ActivityUseCase consultas del rastro de auditoría.
type ActivityUseCase struct {
	activities repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso de actividades.
func NewActivityUseCase(activities repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{activities: activities}
}

// ToActivityResponse mapea una actividad a su DTO de salida.
func ToActivityResponse(a *entity.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		UserName:     a.UserName,
		ActivityType: a.ActivityType,
		Description:  a.Description,
		EntityType:   a.EntityType,
		EntityID:     a.EntityID,
		Metadata:     a.Metadata,
		CreatedAt:    a.CreatedAt,
	}
}

// List lista actividades con filtro por tipo y búsqueda libre.
func (uc *ActivityUseCase) List(filter repository.ActivityFilter) (*dto.ActivityListResponse, error) {
	list, total, err := uc.activities.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToActivityResponse(a))
	}
	return &dto.ActivityListResponse{
		Activities: out,
		Meta:       dto.PageResponse{Page: filter.Page, PerPage: filter.PerPage, Total: total},
	}, nil
}

// Stats agregados de los últimos `days` días: conteos por tipo, por día y
// los diez usuarios más activos.
func (uc *ActivityUseCase) Stats(days int) (*dto.ActivityStatsResponse, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	byType, err := uc.activities.CountsByType(since)
	if err != nil {
		return nil, err
	}
	daily, err := uc.activities.DailyCounts(since)
	if err != nil {
		return nil, err
	}
	topUsers, err := uc.activities.TopUsers(since, 10)
	if err != nil {
		return nil, err
	}

	resp := &dto.ActivityStatsResponse{
		PeriodDays:  days,
		GeneratedAt: time.Now().UTC(),
	}
	for _, tc := range byType {
		resp.Total += tc.Count
		resp.ByType = append(resp.ByType, dto.ActivityTypeCount{Type: tc.Type, Count: tc.Count})
	}
	for _, dc := range daily {
		resp.Daily = append(resp.Daily, dto.ActivityDailyCount{Date: dc.Date, Count: dc.Count})
	}
	for _, tu := range topUsers {
		resp.TopUsers = append(resp.TopUsers, dto.ActivityUserCount{UserName: tu.UserName, Count: tu.Count})
	}
	return resp, nil
}
