package dto

import "time"

// NotificationResponse salida de un aviso in-app.
type NotificationResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// NotificationListResponse listado con el contador de no leídos.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
	Meta          PageResponse           `json:"meta"`
}

// FollowUpReminderResponse lead con seguimiento próximo a vencer.
type FollowUpReminderResponse struct {
	LeadID             string     `json:"lead_id"`
	LeadName           string     `json:"lead_name"`
	Stage              string     `json:"stage"`
	AssignedEmployeeID *string    `json:"assigned_employee_id"`
	NextFollowUp       *time.Time `json:"next_follow_up"`
}

// ScanResultResponse resultado del escaneo manual de seguimientos.
type ScanResultResponse struct {
	NotificationsCreated int `json:"notifications_created"`
}
