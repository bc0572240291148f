package repository

import (
	"time"

	"github.com/jhoicas/estatecrm-api/internal/domain/entity"
)

// ActivityFilter criterios del listado de auditoría.
type ActivityFilter struct {
	ActivityType string // vacío o "all" = todos
	Search       string // descripción o nombre del actor
	Page         int
	PerPage      int
}

// TypeCount conteo de actividades agrupadas por tipo.
type TypeCount struct {
	Type  string
	Count int
}

// DailyCount conteo de actividades por día.
type DailyCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// UserActivityCount conteo de actividades por usuario (top N).
type UserActivityCount struct {
	UserName string
	Count    int
}

// ActivityRepository persistencia write-once del rastro de auditoría.
type ActivityRepository interface {
	Create(a *entity.Activity) error
	List(filter ActivityFilter) ([]*entity.Activity, int, error)
	ListRecent(since time.Time, limit int) ([]*entity.Activity, error)
	CountsByType(since time.Time) ([]TypeCount, error)
	DailyCounts(since time.Time) ([]DailyCount, error)
	TopUsers(since time.Time, limit int) ([]UserActivityCount, error)
}
