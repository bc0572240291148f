package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un Payment individual.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)

// Payment cuota o pago asociado a un PostSale.
type Payment struct {
	ID              string
	PostSaleID      string
	PaymentType     string // token, down_payment, installment, final_payment
	Amount          decimal.Decimal
	DueDate         *time.Time
	PaidDate        *time.Time
	PaymentMethod   string // cash, cheque, online, bank_transfer
	ReferenceNumber string
	Status          string // pending, paid, overdue
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
