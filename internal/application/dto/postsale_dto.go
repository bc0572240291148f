package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePostSaleRequest entrada para abrir la postventa de un lead ganado.
type CreatePostSaleRequest struct {
	LeadID            string          `json:"lead_id" validate:"required,uuid"`
	SalePrice         decimal.Decimal `json:"sale_price" validate:"required"`
	SaleDate          *time.Time      `json:"sale_date"`
	Documents         []string        `json:"documents"`
	HandoverDate      *time.Time      `json:"handover_date"`
	PossessionDate    *time.Time      `json:"possession_date"`
	WarrantyStartDate *time.Time      `json:"warranty_start_date"`
	WarrantyEndDate   *time.Time      `json:"warranty_end_date"`
	Notes             string          `json:"notes"`
}

// UpdatePostSaleRequest entrada para actualizar; solo los campos presentes se aplican.
type UpdatePostSaleRequest struct {
	SalePrice         *decimal.Decimal `json:"sale_price"`
	SaleDate          *time.Time       `json:"sale_date"`
	PaymentStatus     *string          `json:"payment_status" validate:"omitempty,oneof=pending partial completed"`
	Documents         *[]string        `json:"documents"`
	HandoverDate      *time.Time       `json:"handover_date"`
	PossessionDate    *time.Time       `json:"possession_date"`
	WarrantyStartDate *time.Time       `json:"warranty_start_date"`
	WarrantyEndDate   *time.Time       `json:"warranty_end_date"`
	Notes             *string          `json:"notes"`
}

// PostSaleResponse salida de una postventa con sus pagos e incidencias.
type PostSaleResponse struct {
	ID                string                  `json:"id"`
	LeadID            string                  `json:"lead_id"`
	PropertyID        string                  `json:"property_id"`
	SalePrice         decimal.Decimal         `json:"sale_price"`
	SaleDate          time.Time               `json:"sale_date"`
	PaymentStatus     string                  `json:"payment_status"`
	Documents         []string                `json:"documents"`
	HandoverDate      *time.Time              `json:"handover_date"`
	PossessionDate    *time.Time              `json:"possession_date"`
	WarrantyStartDate *time.Time              `json:"warranty_start_date"`
	WarrantyEndDate   *time.Time              `json:"warranty_end_date"`
	Notes             string                  `json:"notes"`
	Payments          []PaymentResponse       `json:"payments,omitempty"`
	Tickets           []SupportTicketResponse `json:"tickets,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// PostSaleListResponse listado paginado de postventas.
type PostSaleListResponse struct {
	PostSales []PostSaleResponse `json:"post_sales"`
	Meta      PageResponse       `json:"meta"`
}

// PaymentRequest entrada para registrar un pago.
type PaymentRequest struct {
	PaymentType     string          `json:"payment_type" validate:"required"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	DueDate         *time.Time      `json:"due_date"`
	PaidDate        *time.Time      `json:"paid_date"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number"`
	Status          string          `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	Notes           string          `json:"notes"`
}

// UpdatePaymentRequest entrada para actualizar un pago.
type UpdatePaymentRequest struct {
	PaymentType     *string          `json:"payment_type"`
	Amount          *decimal.Decimal `json:"amount"`
	DueDate         *time.Time       `json:"due_date"`
	PaidDate        *time.Time       `json:"paid_date"`
	PaymentMethod   *string          `json:"payment_method"`
	ReferenceNumber *string          `json:"reference_number"`
	Status          *string          `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	Notes           *string          `json:"notes"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID              string          `json:"id"`
	PostSaleID      string          `json:"post_sale_id"`
	PaymentType     string          `json:"payment_type"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         *time.Time      `json:"due_date"`
	PaidDate        *time.Time      `json:"paid_date"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SupportTicketRequest entrada para abrir una incidencia.
type SupportTicketRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=300"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo  *string `json:"assigned_to"`
}

// UpdateSupportTicketRequest entrada para actualizar una incidencia.
type UpdateSupportTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	AssignedTo  *string `json:"assigned_to"`
	Resolution  *string `json:"resolution"`
}

// SupportTicketResponse salida de una incidencia.
type SupportTicketResponse struct {
	ID          string    `json:"id"`
	PostSaleID  string    `json:"post_sale_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AssignedTo  *string   `json:"assigned_to"`
	Resolution  string    `json:"resolution"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
