package entity

import "time"

// Tipos de actividad convencionales (la columna es texto libre).
const (
	ActivityLeadAdded        = "lead_added"
	ActivityLeadStageChanged = "lead_stage_changed"
	ActivityLeadDeleted      = "lead_deleted"
	ActivityCommAdded        = "communication_added"
	ActivityPropertyAdded    = "property_added"
	ActivityPropertyDeleted  = "property_deleted"
	ActivitySaleCompleted    = "sale_completed"
	ActivityPaymentAdded     = "payment_added"
	ActivityEmployeeAdded    = "employee_added"
	ActivityEmployeeDeleted  = "employee_deleted"
	ActivityShortcodeCreated = "shortcode_created"
	ActivityShortcodeUpdated = "shortcode_updated"
	ActivityShortcodeDeleted = "shortcode_deleted"
	ActivityFavoriteAdded    = "property_favorited"
	ActivityFavoriteRemoved  = "property_unfavorited"
)

// Activity registro inmutable de auditoría. La descripción llega ya
// interpolada por el caller; aquí no se renderizan plantillas.
type Activity struct {
	ID           string
	UserID       string
	ActivityType string
	Description  string
	EntityType   string
	EntityID     string
	Metadata     map[string]any
	CreatedAt    time.Time

	// UserName se completa en lecturas (join con users); no se persiste.
	UserName string
}
