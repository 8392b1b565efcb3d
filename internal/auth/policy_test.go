package auth

import (
	"testing"

	"github.com/digibuster/helpdesk-api/internal/domain"
)

var (
	aCustomer = &domain.User{ID: "c1", Role: domain.RoleCustomer}
	bCustomer = &domain.User{ID: "c2", Role: domain.RoleCustomer}
	anAgent   = &domain.User{ID: "a1", Role: domain.RoleAgent}
)

func TestCreateAndUpdateGates(t *testing.T) {
	if !CanCreateTicket(aCustomer) {
		t.Fatalf("customer must be allowed to create")
	}
	if CanCreateTicket(anAgent) {
		t.Fatalf("agent must not create tickets")
	}
	if !CanUpdateTicket(anAgent) {
		t.Fatalf("agent must be allowed to update")
	}
	if CanUpdateTicket(aCustomer) {
		t.Fatalf("customer must not update, ownership is irrelevant")
	}
}

func TestCanViewTicket(t *testing.T) {
	ticket := &domain.Ticket{ID: "t1", CustomerID: "c1"}

	if !CanViewTicket(aCustomer, ticket) {
		t.Fatalf("owner must read own ticket")
	}
	if CanViewTicket(bCustomer, ticket) {
		t.Fatalf("unrelated customer must be denied")
	}
	if !CanViewTicket(anAgent, ticket) {
		t.Fatalf("agent must read any ticket")
	}
}

func TestScopeFor(t *testing.T) {
	scope := ScopeFor(aCustomer)
	if scope.CustomerID == nil || *scope.CustomerID != "c1" {
		t.Fatalf("customer scope must be restricted to own id: %+v", scope)
	}

	if agentScope := ScopeFor(anAgent); agentScope.CustomerID != nil {
		t.Fatalf("agent scope must be unrestricted: %+v", agentScope)
	}
}
