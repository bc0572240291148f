package entity

import "time"

// Tipos de comunicación registrables sobre un Lead.
const (
	CommCall     = "call"
	CommEmail    = "email"
	CommSMS      = "sms"
	CommMeeting  = "meeting"
	CommFollowUp = "follow_up"
)

// Direcciones de una comunicación.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Communication entrada append-only del historial de interacciones de un Lead.
type Communication struct {
	ID        string
	LeadID    string
	Type      string // call, email, sms, meeting, follow_up
	Subject   string
	Content   string
	Direction string // inbound, outbound
	CreatedBy *string
	CreatedAt time.Time
}
