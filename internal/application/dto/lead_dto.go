package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest entrada para crear un lead autenticado.
type CreateLeadRequest struct {
	Name               string           `json:"name" validate:"required,min=1,max=200"`
	Email              string           `json:"email" validate:"omitempty,email"`
	Phone              string           `json:"phone"`
	Source             string           `json:"source"`
	Stage              string           `json:"stage" validate:"omitempty,oneof=new contacted site_visit_scheduled negotiation closed_won closed_lost"`
	PropertyID         *string          `json:"property_id"`
	AssignedEmployeeID *string          `json:"assigned_employee_id"`
	Budget             *decimal.Decimal `json:"budget"`
	Notes              string           `json:"notes"`
	NextFollowUp       *time.Time       `json:"next_follow_up"`
}

// UpdateLeadRequest entrada para actualizar; solo los campos presentes se aplican.
type UpdateLeadRequest struct {
	Name               *string          `json:"name"`
	Email              *string          `json:"email" validate:"omitempty,email"`
	Phone              *string          `json:"phone"`
	Source             *string          `json:"source"`
	Stage              *string          `json:"stage" validate:"omitempty,oneof=new contacted site_visit_scheduled negotiation closed_won closed_lost"`
	PropertyID         *string          `json:"property_id"`
	AssignedEmployeeID *string          `json:"assigned_employee_id"`
	Budget             *decimal.Decimal `json:"budget"`
	Notes              *string          `json:"notes"`
	LastContactDate    *time.Time       `json:"last_contact_date"`
	NextFollowUp       *time.Time       `json:"next_follow_up"`
}

// WebsiteFormRequest captura pública de leads desde el sitio web.
type WebsiteFormRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Phone      string  `json:"phone"`
	Message    string  `json:"message"`
	PropertyID *string `json:"property_id"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	Source             string           `json:"source"`
	Stage              string           `json:"stage"`
	PropertyID         *string          `json:"property_id"`
	AssignedEmployeeID *string          `json:"assigned_employee_id"`
	Budget             *decimal.Decimal `json:"budget"`
	Notes              string           `json:"notes"`
	LastContactDate    *time.Time       `json:"last_contact_date"`
	NextFollowUp       *time.Time       `json:"next_follow_up"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// LeadListResponse listado paginado de leads.
type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
	Meta  PageResponse   `json:"meta"`
}

// PipelineStage etapa del pipeline con sus leads.
type PipelineStage struct {
	Stage string         `json:"stage"`
	Count int            `json:"count"`
	Leads []LeadResponse `json:"leads"`
}

// PipelineResponse leads agrupados por etapa en orden canónico.
type PipelineResponse struct {
	Stages []PipelineStage `json:"stages"`
}

// CommunicationRequest entrada para registrar una comunicación sobre un lead.
type CommunicationRequest struct {
	Type      string `json:"type" validate:"required,oneof=call email sms meeting follow_up"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Direction string `json:"direction" validate:"omitempty,oneof=inbound outbound"`
}

// CommunicationResponse salida de una comunicación.
type CommunicationResponse struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Direction string    `json:"direction"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
