package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest entrada para crear un empleado (password en texto, se hashea en use case).
type CreateEmployeeRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FirstName   string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string   `json:"last_name" validate:"max=100"`
	Phone       string   `json:"phone"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Pincode     string   `json:"pincode"`
	Role        string   `json:"role" validate:"required,oneof=admin manager sales_agent employee"`
	Permissions []string `json:"permissions"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado (campos opcionales).
type UpdateEmployeeRequest struct {
	Email       *string   `json:"email" validate:"omitempty,email"`
	Password    *string   `json:"password" validate:"omitempty,min=8"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Phone       *string   `json:"phone"`
	Avatar      *string   `json:"avatar"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	Pincode     *string   `json:"pincode"`
	Role        *string   `json:"role" validate:"omitempty,oneof=admin manager sales_agent employee"`
	Permissions *[]string `json:"permissions"`
	IsActive    *bool     `json:"is_active"`
}

// EmployeeResponse salida de un empleado (sin password).
type EmployeeResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	Avatar      string    `json:"avatar"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Meta      PageResponse       `json:"meta"`
}

// EmployeePerformanceResponse métricas de desempeño de un empleado.
type EmployeePerformanceResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	TotalLeads     int             `json:"total_leads"`
	WonLeads       int             `json:"won_leads"`
	LostLeads      int             `json:"lost_leads"`
	ConversionRate float64         `json:"conversion_rate"`
	Revenue        decimal.Decimal `json:"revenue"`
}
