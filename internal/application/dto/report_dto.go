package dto

import "github.com/shopspring/decimal"

// MonthlySales ventas agregadas de un mes.
type MonthlySales struct {
	Month   string          `json:"month"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesReportResponse desempeño de ventas por mes.
type SalesReportResponse struct {
	Months       []MonthlySales  `json:"months"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSales   int             `json:"total_sales"`
}

// LeadSourceEntry leads agrupados por origen.
type LeadSourceEntry struct {
	Source     string  `json:"source"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LeadSourcesReportResponse desglose de orígenes de leads.
type LeadSourcesReportResponse struct {
	Sources []LeadSourceEntry `json:"sources"`
	Total   int               `json:"total"`
}

// ProductivityEntry métricas de un empleado.
type ProductivityEntry struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	TotalLeads     int             `json:"total_leads"`
	WonLeads       int             `json:"won_leads"`
	ConversionRate float64         `json:"conversion_rate"`
	Revenue        decimal.Decimal `json:"revenue"`
}

// ProductivityReportResponse productividad por empleado.
type ProductivityReportResponse struct {
	Employees []ProductivityEntry `json:"employees"`
}

// InventoryReportResponse inventario de propiedades por estado.
type InventoryReportResponse struct {
	ByStatus map[string]int `json:"by_status"`
	Total    int            `json:"total"`
}
