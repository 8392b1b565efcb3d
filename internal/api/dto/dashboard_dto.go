package dto

import "github.com/digibuster/helpdesk-api/internal/domain"

// DashboardStatsResponse is the role-scoped aggregate payload. The
// in_progress breakdown appears only for agents.
type DashboardStatsResponse struct {
	TotalTickets      int64       `json:"total_tickets"`
	OpenTickets       int64       `json:"open_tickets"`
	InProgressTickets *int64      `json:"in_progress_tickets,omitempty"`
	ResolvedTickets   int64       `json:"resolved_tickets"`
	Role              domain.Role `json:"role"`
}
