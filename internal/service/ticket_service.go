package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/digibuster/helpdesk-api/internal/auth"
	"github.com/digibuster/helpdesk-api/internal/domain"
	"github.com/digibuster/helpdesk-api/internal/events"
	"github.com/digibuster/helpdesk-api/internal/repository"
	apperrors "github.com/digibuster/helpdesk-api/pkg/util"
)

// TicketService coordinates ticket lifecycle operations behind the
// authorization policy.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	listLimit  int
}

// NewTicketService constructs the service. listLimit caps list retrieval;
// zero falls back to the repository default.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher, listLimit int) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher, listLimit: listLimit}
}

// TicketCreateInput describes the ticket creation payload. Category and
// priority default to other/medium when empty.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
	Priority    domain.TicketPriority
}

// TicketUpdateInput mirrors the agent-updatable fields. An empty string means
// the field was not supplied and stays untouched.
type TicketUpdateInput struct {
	Status    domain.TicketStatus
	AgentID   string
	AgentName string
}

// Create opens a new ticket owned by the caller. Only customers may create;
// the owner snapshot (id and name) is fixed at creation.
func (s *TicketService) Create(ctx context.Context, caller *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	if !auth.CanCreateTicket(caller) {
		return nil, apperrors.NewForbidden("only customers can create tickets")
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}

	category := input.Category
	if category == "" {
		category = domain.TicketCategoryOther
	}
	if !category.Valid() {
		return nil, apperrors.NewValidationError("unknown category", map[string]any{"category": string(category)})
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": string(priority)})
	}

	ticket := &domain.Ticket{
		Title:        title,
		Description:  description,
		Category:     category,
		Priority:     priority,
		Status:       domain.TicketStatusOpen,
		CustomerID:   caller.ID,
		CustomerName: caller.FullName,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Category: ticket.Category,
			Priority: ticket.Priority,
		},
	}, caller)
	return ticket, nil
}

// List returns the tickets visible to the caller: customers see their own,
// agents see all. Retrieval is capped at the configured list limit.
func (s *TicketService) List(ctx context.Context, caller *domain.User) ([]domain.Ticket, error) {
	scope := auth.ScopeFor(caller)
	if scope.CustomerID != nil {
		return s.tickets.ListByCustomer(ctx, *scope.CustomerID, s.listLimit)
	}
	return s.tickets.ListAll(ctx, s.listLimit)
}

// Get fetches a single ticket, enforcing read scope. A missing id reports
// NotFound before any ownership check.
func (s *TicketService) Get(ctx context.Context, caller *domain.User, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, err
	}
	if !auth.CanViewTicket(caller, ticket) {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

// Update applies status/assignee changes. Agents only; customers are denied
// before the ticket is even looked up, own tickets included. Fields left
// empty in the input keep their stored values, while updated_at always moves
// forward.
func (s *TicketService) Update(ctx context.Context, caller *domain.User, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	if !auth.CanUpdateTicket(caller) {
		return nil, apperrors.NewForbidden("only agents can update tickets")
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": string(input.Status)})
	}

	ticket, err := s.tickets.Update(ctx, id, repository.TicketPatch{
		Status:    input.Status,
		AgentID:   input.AgentID,
		AgentName: input.AgentName,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		Payload: events.TicketUpdatedPayload{
			Status:  input.Status,
			AgentID: input.AgentID,
		},
	}, caller)
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event, caller *domain.User) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Actor = events.Actor{UserID: caller.ID, Role: caller.Role}
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}
