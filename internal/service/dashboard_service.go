package service

import (
	"context"

	"github.com/digibuster/helpdesk-api/internal/auth"
	"github.com/digibuster/helpdesk-api/internal/domain"
	"github.com/digibuster/helpdesk-api/internal/repository"
)

// DashboardService computes role-scoped ticket aggregates.
type DashboardService struct {
	tickets repository.TicketRepository
}

// NewDashboardService constructs the service.
func NewDashboardService(tickets repository.TicketRepository) *DashboardService {
	return &DashboardService{tickets: tickets}
}

// DashboardStats is the aggregate view for a caller. InProgressTickets is
// only populated for agents.
type DashboardStats struct {
	TotalTickets      int64
	OpenTickets       int64
	InProgressTickets *int64
	ResolvedTickets   int64
	Role              domain.Role
}

// Stats returns aggregates under the same visibility scope as ticket listing:
// customers count only their own tickets, agents count everything and get an
// extra in-progress breakdown.
func (s *DashboardService) Stats(ctx context.Context, caller *domain.User) (*DashboardStats, error) {
	scope := auth.ScopeFor(caller)
	base := repository.TicketFilter{CustomerID: scope.CustomerID}

	total, err := s.tickets.Count(ctx, base)
	if err != nil {
		return nil, err
	}
	open, err := s.tickets.Count(ctx, withStatus(base, domain.TicketStatusOpen))
	if err != nil {
		return nil, err
	}
	resolved, err := s.tickets.Count(ctx, withStatus(base, domain.TicketStatusResolved))
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalTickets:    total,
		OpenTickets:     open,
		ResolvedTickets: resolved,
		Role:            caller.Role,
	}

	if caller.Role == domain.RoleAgent {
		inProgress, err := s.tickets.Count(ctx, withStatus(base, domain.TicketStatusInProgress))
		if err != nil {
			return nil, err
		}
		stats.InProgressTickets = &inProgress
	}

	return stats, nil
}

func withStatus(filter repository.TicketFilter, status domain.TicketStatus) repository.TicketFilter {
	filter.Status = &status
	return filter
}
