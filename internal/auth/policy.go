package auth

import "github.com/digibuster/helpdesk-api/internal/domain"

// Policy decisions are pure role/ownership checks with no I/O. Role branching
// in the service layer goes through this file rather than comparing role
// strings at call sites.

// CanCreateTicket reports whether the caller may open a new ticket.
func CanCreateTicket(caller *domain.User) bool {
	return caller.Role == domain.RoleCustomer
}

// CanUpdateTicket reports whether the caller may change status or assignee.
// Customers are denied even for tickets they own.
func CanUpdateTicket(caller *domain.User) bool {
	return caller.Role == domain.RoleAgent
}

// CanViewTicket reports whether the caller may read the given ticket.
func CanViewTicket(caller *domain.User, ticket *domain.Ticket) bool {
	if caller.Role == domain.RoleAgent {
		return true
	}
	return caller.ID == ticket.CustomerID
}

// ListScope describes the subset of tickets visible to a caller. A nil
// CustomerID means the scope is unrestricted.
type ListScope struct {
	CustomerID *string
}

// ScopeFor returns the ticket visibility scope for the caller: customers see
// only their own tickets, agents see everything. Dashboard aggregates share
// this scope.
func ScopeFor(caller *domain.User) ListScope {
	if caller.Role == domain.RoleCustomer {
		id := caller.ID
		return ListScope{CustomerID: &id}
	}
	return ListScope{}
}
