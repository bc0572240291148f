package dto

import "github.com/shopspring/decimal"

// DashboardOverviewResponse KPIs del panel principal.
type DashboardOverviewResponse struct {
	TotalLeads         int                        `json:"total_leads"`
	ActiveListings     int                        `json:"active_listings"`
	PropertiesSold     int                        `json:"properties_sold"`
	PropertiesByStatus map[string]int             `json:"properties_by_status"`
	RevenueThisMonth   decimal.Decimal            `json:"revenue_this_month"`
	PendingTasks       int                        `json:"pending_tasks"`
	ConversionRate     float64                    `json:"conversion_rate"`
	RecentActivity     []ActivityResponse         `json:"recent_activity"`
	UpcomingFollowUps  []FollowUpReminderResponse `json:"upcoming_follow_ups"`
}
