package dto

import (
	"time"

	"github.com/digibuster/helpdesk-api/internal/domain"
)

// CreateTicketRequest payload. Category and priority are optional and
// default to other/medium.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
}

// UpdateTicketRequest payload. An omitted or empty field is not applied.
type UpdateTicketRequest struct {
	Status    domain.TicketStatus `json:"status"`
	AgentID   string              `json:"agent_id"`
	AgentName string              `json:"agent_name"`
}

// TicketResponse mirrors the ticket record field for field. Agent fields are
// absent until first assignment.
type TicketResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     domain.TicketCategory `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Status       domain.TicketStatus   `json:"status"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	AgentID      *string               `json:"agent_id,omitempty"`
	AgentName    *string               `json:"agent_name,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// NewTicketResponse maps a domain ticket to its response form.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           ticket.ID,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Category:     ticket.Category,
		Priority:     ticket.Priority,
		Status:       ticket.Status,
		CustomerID:   ticket.CustomerID,
		CustomerName: ticket.CustomerName,
		AgentID:      ticket.AgentID,
		AgentName:    ticket.AgentName,
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
}

// NewTicketResponses maps a ticket slice, preserving order.
func NewTicketResponses(tickets []domain.Ticket) []TicketResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, NewTicketResponse(&tickets[i]))
	}
	return items
}
