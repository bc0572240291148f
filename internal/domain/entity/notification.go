package entity

import "time"

// Tipos de notificación.
const (
	NotificationLead     = "lead"
	NotificationFollowUp = "follow_up"
	NotificationProperty = "property"
	NotificationPayment  = "payment"
	NotificationSystem   = "system"
)

// Notification aviso in-app dirigido a un usuario concreto.
// La crea el fan-out; el destinatario solo puede marcarla leída o borrarla.
type Notification struct {
	ID         string
	UserID     string
	Title      string
	Message    string
	Type       string // lead, follow_up, property, payment, system
	EntityType string
	EntityID   string
	IsRead     bool
	CreatedAt  time.Time
}
