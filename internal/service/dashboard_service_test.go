package service

import (
	"context"
	"testing"

	"github.com/digibuster/helpdesk-api/internal/domain"
)

func TestDashboardService_CustomerScope(t *testing.T) {
	ticketSvc, repo, _ := newTicketService()
	svc := NewDashboardService(repo)
	ctx := context.Background()
	alice := customer("c1", "Alice")
	bob := customer("c2", "Bob")
	admin := agent("a1", "Agent")

	var ids []string
	for i := 0; i < 3; i++ {
		ticket, err := ticketSvc.Create(ctx, alice, TicketCreateInput{Title: "t", Description: "d"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, ticket.ID)
	}
	if _, err := ticketSvc.Create(ctx, bob, TicketCreateInput{Title: "t", Description: "d"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := ticketSvc.Update(ctx, admin, ids[1], TicketUpdateInput{Status: domain.TicketStatusResolved}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := ticketSvc.Update(ctx, admin, ids[2], TicketUpdateInput{Status: domain.TicketStatusInProgress}); err != nil {
		t.Fatalf("progress: %v", err)
	}

	stats, err := svc.Stats(ctx, alice)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalTickets != 3 || stats.OpenTickets != 1 || stats.ResolvedTickets != 1 {
		t.Fatalf("customer stats wrong: %+v", stats)
	}
	if stats.InProgressTickets != nil {
		t.Fatalf("customer stats must not break down in_progress")
	}
	if stats.Role != domain.RoleCustomer {
		t.Fatalf("role = %q, want customer", stats.Role)
	}
}

func TestDashboardService_AgentSeesEverything(t *testing.T) {
	ticketSvc, repo, _ := newTicketService()
	svc := NewDashboardService(repo)
	ctx := context.Background()
	admin := agent("a1", "Agent")

	first, err := ticketSvc.Create(ctx, customer("c1", "Alice"), TicketCreateInput{Title: "t", Description: "d"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ticketSvc.Create(ctx, customer("c2", "Bob"), TicketCreateInput{Title: "t", Description: "d"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := ticketSvc.Update(ctx, admin, first.ID, TicketUpdateInput{Status: domain.TicketStatusInProgress}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stats, err := svc.Stats(ctx, admin)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalTickets != 2 || stats.OpenTickets != 1 {
		t.Fatalf("agent stats wrong: %+v", stats)
	}
	if stats.InProgressTickets == nil || *stats.InProgressTickets != 1 {
		t.Fatalf("agent stats must include in_progress=1: %+v", stats)
	}
	if stats.Role != domain.RoleAgent {
		t.Fatalf("role = %q, want agent", stats.Role)
	}
}
