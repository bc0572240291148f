package dto

import "time"

// ActivityResponse salida de una entrada de auditoría.
type ActivityResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	UserName     string         `json:"user_name"`
	ActivityType string         `json:"activity_type"`
	Description  string         `json:"description"`
	EntityType   string         `json:"entity_type"`
	EntityID     string         `json:"entity_id"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ActivityListResponse listado paginado de actividades.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Meta       PageResponse       `json:"meta"`
}

// ActivityTypeCount conteo por tipo de actividad.
type ActivityTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ActivityDailyCount conteo por día.
type ActivityDailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityUserCount conteo por usuario.
type ActivityUserCount struct {
	UserName string `json:"user_name"`
	Count    int    `json:"count"`
}

// ActivityStatsResponse agregados del rastro de auditoría.
type ActivityStatsResponse struct {
	Total       int                  `json:"total"`
	ByType      []ActivityTypeCount  `json:"by_type"`
	Daily       []ActivityDailyCount `json:"daily"`
	TopUsers    []ActivityUserCount  `json:"top_users"`
	PeriodDays  int                  `json:"period_days"`
	GeneratedAt time.Time            `json:"generated_at"`
}
