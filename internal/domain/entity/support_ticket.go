package entity

import "time"

// Estados y prioridades de SupportTicket.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// SupportTicket incidencia de servicio asociada a un PostSale.
type SupportTicket struct {
	ID          string
	PostSaleID  string
	Title       string
	Description string
	Priority    string // low, medium, high, urgent
	Status      string // open, in_progress, resolved, closed
	AssignedTo  *string
	Resolution  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
