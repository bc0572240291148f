package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago agregados de un PostSale.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPartial   = "partial"
	PaymentStatusCompleted = "completed"
)

// PostSale registro de servicio postventa; como máximo uno por Lead.
type PostSale struct {
	ID                string
	LeadID            string
	PropertyID        string
	SalePrice         decimal.Decimal
	SaleDate          time.Time
	PaymentStatus     string // pending, partial, completed
	Documents         []string
	HandoverDate      *time.Time
	PossessionDate    *time.Time
	WarrantyStartDate *time.Time
	WarrantyEndDate   *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
